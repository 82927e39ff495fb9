package sign

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action/wire"
	"github/chapool/hl-signer/internal/api"
)

const (
	assetFlag       = "asset"
	sideFlag        = "side"
	priceFlag       = "price"
	sizeFlag        = "size"
	reduceOnlyFlag  = "reduce-only"
	tifFlag         = "tif"
	triggerPxFlag   = "trigger-px"
	tpslFlag        = "tpsl"
	marketFlag      = "market"
	cloidFlag       = "cloid"
	szDecimalsFlag  = "sz-decimals"
	spotFlag        = "spot"
	groupingFlag    = "grouping"
	builderFlag     = "builder"
	builderFeeFlag  = "builder-fee"
	oidFlag         = "oid"
	targetCloidFlag = "target-cloid"
)

func newOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Builds and signs an order",
		Long: `Builds a single limit or trigger order and signs it as an L1 action.

Prices and sizes are sent as given unless --sz-decimals is set, in which case they are
rounded to the asset's tick and lot size first. The printed action is the one that was signed.`,
		Example: `  hl-signer sign order --asset 0 --side buy --price 65000 --size 0.01 --tif Alo`,
		RunE:    runWithServer(runOrder),
	}

	addOrderFlags(cmd)
	cmd.Flags().String(groupingFlag, string(wire.GroupingNA), "Order grouping: na, normalTpsl or positionTpsl")
	cmd.Flags().String(builderFlag, "", "Optional builder address receiving a fee")
	cmd.Flags().Int(builderFeeFlag, 0, "Builder fee in tenths of a basis point")
	cmd.MarkFlagsRequiredTogether(builderFlag, builderFeeFlag)
	addL1OptionFlags(cmd)
	addNetworkFlag(cmd)

	return cmd
}

func runOrder(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	order, err := readOrder(cmd)
	if err != nil {
		return err
	}

	grouping, _ := cmd.Flags().GetString(groupingFlag)

	var builder *wire.Builder
	if addr, _ := cmd.Flags().GetString(builderFlag); addr != "" {
		fee, _ := cmd.Flags().GetInt(builderFeeFlag)
		builder = &wire.Builder{Address: addr, Fee: fee}
	}

	act, err := wire.OrderAction([]wire.Order{order}, wire.Grouping(grouping), builder)
	if err != nil {
		return errors.Wrap(err, "failed to build order")
	}

	return signBuiltL1(ctx, cmd, s, act)
}

func newModify() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Builds and signs a modification of a resting order",
		Long: `Replaces the order identified by --oid or --target-cloid with the order described by
the remaining flags and signs the batchModify action.`,
		RunE: runWithServer(runModify),
	}

	addOrderFlags(cmd)
	cmd.Flags().Uint64(oidFlag, 0, "Exchange id of the order to modify")
	cmd.Flags().String(targetCloidFlag, "", "Client id of the order to modify")
	cmd.MarkFlagsMutuallyExclusive(oidFlag, targetCloidFlag)
	cmd.MarkFlagsOneRequired(oidFlag, targetCloidFlag)
	addL1OptionFlags(cmd)
	addNetworkFlag(cmd)

	return cmd
}

func runModify(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	order, err := readOrder(cmd)
	if err != nil {
		return err
	}

	mod := wire.Modify{Order: order}
	if cmd.Flags().Changed(oidFlag) {
		oid, _ := cmd.Flags().GetUint64(oidFlag)
		mod.Oid = &oid
	} else {
		raw, _ := cmd.Flags().GetString(targetCloidFlag)
		cloid, err := wire.ParseCloid(raw)
		if err != nil {
			return err
		}
		mod.Cloid = &cloid
	}

	act, err := wire.BatchModifyAction(mod)
	if err != nil {
		return errors.Wrap(err, "failed to build modify")
	}

	return signBuiltL1(ctx, cmd, s, act)
}

func addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().Int(assetFlag, 0, "Asset index")
	cmd.Flags().String(sideFlag, "", "buy or sell")
	cmd.Flags().Float64(priceFlag, 0, "Limit price")
	cmd.Flags().Float64(sizeFlag, 0, "Order size")
	cmd.Flags().Bool(reduceOnlyFlag, false, "Only reduce an open position")
	cmd.Flags().String(tifFlag, string(wire.TifGtc), "Time in force of a limit order: Alo, Ioc or Gtc")
	cmd.Flags().Float64(triggerPxFlag, 0, "Trigger price, makes the order a trigger order")
	cmd.Flags().String(tpslFlag, string(wire.TpslTakeProfit), "Trigger kind: tp or sl")
	cmd.Flags().Bool(marketFlag, false, "Execute the trigger order as a market order")
	cmd.Flags().String(cloidFlag, "", "Optional client order id, 16 bytes hex")
	cmd.Flags().Int(szDecimalsFlag, 0, "Round price and size for an asset with these size decimals")
	cmd.Flags().Bool(spotFlag, false, "Round the price for a spot asset")

	_ = cmd.MarkFlagRequired(assetFlag)
	_ = cmd.MarkFlagRequired(sideFlag)
	_ = cmd.MarkFlagRequired(priceFlag)
	_ = cmd.MarkFlagRequired(sizeFlag)
}

func readOrder(cmd *cobra.Command) (wire.Order, error) {
	flags := cmd.Flags()

	side, _ := flags.GetString(sideFlag)
	isBuy, err := parseSide(side)
	if err != nil {
		return wire.Order{}, err
	}

	asset, _ := flags.GetInt(assetFlag)
	price, _ := flags.GetFloat64(priceFlag)
	size, _ := flags.GetFloat64(sizeFlag)
	reduceOnly, _ := flags.GetBool(reduceOnlyFlag)

	if flags.Changed(szDecimalsFlag) {
		szDecimals, _ := flags.GetInt(szDecimalsFlag)
		spot, _ := flags.GetBool(spotFlag)
		price = wire.RoundPrice(price, szDecimals, spot)
		size = wire.RoundSize(size, szDecimals)
	}

	order := wire.Order{
		Asset:      asset,
		IsBuy:      isBuy,
		LimitPx:    price,
		Size:       size,
		ReduceOnly: reduceOnly,
	}

	if flags.Changed(triggerPxFlag) {
		triggerPx, _ := flags.GetFloat64(triggerPxFlag)
		tpsl, _ := flags.GetString(tpslFlag)
		market, _ := flags.GetBool(marketFlag)
		order.Type.Trigger = &wire.TriggerOrder{TriggerPx: triggerPx, IsMarket: market, Tpsl: wire.Tpsl(tpsl)}
	} else {
		tif, _ := flags.GetString(tifFlag)
		order.Type.Limit = &wire.LimitOrder{Tif: wire.Tif(tif)}
	}

	if raw, _ := flags.GetString(cloidFlag); raw != "" {
		cloid, err := wire.ParseCloid(raw)
		if err != nil {
			return wire.Order{}, err
		}
		order.Cloid = &cloid
	}

	return order, nil
}

func parseSide(side string) (bool, error) {
	switch strings.ToLower(side) {
	case "buy":
		return true, nil
	case "sell":
		return false, nil
	default:
		return false, errors.Errorf("--%s must be buy or sell, got %q", sideFlag, side)
	}
}
