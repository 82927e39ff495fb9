package sign

import (
	"context"

	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/action/wire"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/util/command"
)

const (
	leverageFlag = "leverage"
	crossFlag    = "cross"
	timeFlag     = "time"
)

func newCancel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Builds and signs a cancel by order id or client order id",
		RunE:  runWithServer(runCancel),
	}

	cmd.Flags().Int(assetFlag, 0, "Asset index")
	cmd.Flags().Uint64(oidFlag, 0, "Exchange order id")
	cmd.Flags().String(cloidFlag, "", "Client order id, 16 bytes hex")
	_ = cmd.MarkFlagRequired(assetFlag)
	cmd.MarkFlagsMutuallyExclusive(oidFlag, cloidFlag)
	cmd.MarkFlagsOneRequired(oidFlag, cloidFlag)
	addL1OptionFlags(cmd)
	addNetworkFlag(cmd)

	return cmd
}

func runCancel(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	asset, _ := cmd.Flags().GetInt(assetFlag)

	var act action.Value
	if cmd.Flags().Changed(oidFlag) {
		oid, _ := cmd.Flags().GetUint64(oidFlag)
		act = wire.CancelAction(wire.Cancel{Asset: asset, Oid: oid})
	} else {
		raw, _ := cmd.Flags().GetString(cloidFlag)
		cloid, err := wire.ParseCloid(raw)
		if err != nil {
			return err
		}
		act = wire.CancelByCloidAction(wire.CancelByCloid{Asset: asset, Cloid: cloid})
	}

	return signBuiltL1(ctx, cmd, s, act)
}

func newLeverage() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leverage",
		Short: "Builds and signs a leverage update for an asset",
		RunE:  runWithServer(runLeverage),
	}

	cmd.Flags().Int(assetFlag, 0, "Asset index")
	cmd.Flags().Int(leverageFlag, 0, "New leverage")
	cmd.Flags().Bool(crossFlag, false, "Use cross margin instead of isolated")
	_ = cmd.MarkFlagRequired(assetFlag)
	_ = cmd.MarkFlagRequired(leverageFlag)
	addL1OptionFlags(cmd)
	addNetworkFlag(cmd)

	return cmd
}

func runLeverage(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	asset, _ := cmd.Flags().GetInt(assetFlag)
	leverage, _ := cmd.Flags().GetInt(leverageFlag)
	cross, _ := cmd.Flags().GetBool(crossFlag)

	return signBuiltL1(ctx, cmd, s, wire.UpdateLeverageAction(asset, cross, leverage))
}

func newScheduleCancel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule-cancel",
		Short: "Builds and signs a scheduled cancel of all orders",
		Long:  `Arms the dead man's switch at --time, in milliseconds. Without --time the schedule is cleared.`,
		RunE:  runWithServer(runScheduleCancel),
	}

	cmd.Flags().Uint64(timeFlag, 0, "Time in milliseconds at which all orders are cancelled")
	addL1OptionFlags(cmd)
	addNetworkFlag(cmd)

	return cmd
}

func runScheduleCancel(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	at, err := command.OptionalUint64(cmd, timeFlag)
	if err != nil {
		return err
	}

	return signBuiltL1(ctx, cmd, s, wire.ScheduleCancelAction(at))
}
