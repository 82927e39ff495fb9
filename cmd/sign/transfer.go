package sign

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/action/wire"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
)

const (
	destinationFlag = "destination"
	amountFlag      = "amount"
	tokenFlag       = "token"
	toPerpFlag      = "to-perp"
	agentFlag       = "agent"
	agentNameFlag   = "name"
)

// buildUserAction builds a user-signed action from the flags of cmd. nonce is
// the action's time or nonce field.
type buildUserAction func(cmd *cobra.Command, nonce uint64) (*action.Map, error)

// newUserActionCommand returns a command that signs the action returned by
// build. --nonce defaults to the current time in milliseconds.
func newUserActionCommand(use, short string, build buildUserAction) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: runWithServer(func(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
			nonce := s.Nonces.Next()
			if cmd.Flags().Changed(nonceFlag) {
				nonce, _ = cmd.Flags().GetUint64(nonceFlag)
			}

			act, err := build(cmd, nonce)
			if err != nil {
				return errors.Wrapf(err, "failed to build %s", use)
			}

			return signUser(ctx, cmd, s, &signing.UserSignedRequest{Action: act})
		}),
	}

	cmd.Flags().Uint64(nonceFlag, 0, "Action time in milliseconds, defaults to now")
	addNetworkFlag(cmd)

	return cmd
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().String(destinationFlag, "", "Destination address")
	cmd.Flags().Float64(amountFlag, 0, "Amount")
	_ = cmd.MarkFlagRequired(destinationFlag)
	_ = cmd.MarkFlagRequired(amountFlag)
}

func newUsdSend() *cobra.Command {
	cmd := newUserActionCommand("usd-send", "Builds and signs a USDC transfer to another account",
		func(cmd *cobra.Command, nonce uint64) (*action.Map, error) {
			dest, _ := cmd.Flags().GetString(destinationFlag)
			amount, _ := cmd.Flags().GetFloat64(amountFlag)
			return wire.UsdSendAction(dest, amount, nonce)
		})
	addTransferFlags(cmd)

	return cmd
}

func newSpotSend() *cobra.Command {
	cmd := newUserActionCommand("spot-send", "Builds and signs a spot token transfer to another account",
		func(cmd *cobra.Command, nonce uint64) (*action.Map, error) {
			dest, _ := cmd.Flags().GetString(destinationFlag)
			token, _ := cmd.Flags().GetString(tokenFlag)
			amount, _ := cmd.Flags().GetFloat64(amountFlag)
			return wire.SpotSendAction(dest, token, amount, nonce)
		})
	addTransferFlags(cmd)
	cmd.Flags().String(tokenFlag, "", `Token as "NAME:0x<token id>"`)
	_ = cmd.MarkFlagRequired(tokenFlag)

	return cmd
}

func newWithdraw() *cobra.Command {
	cmd := newUserActionCommand("withdraw", "Builds and signs a USDC withdrawal through the bridge",
		func(cmd *cobra.Command, nonce uint64) (*action.Map, error) {
			dest, _ := cmd.Flags().GetString(destinationFlag)
			amount, _ := cmd.Flags().GetFloat64(amountFlag)
			return wire.WithdrawAction(dest, amount, nonce)
		})
	addTransferFlags(cmd)

	return cmd
}

func newUsdClassTransfer() *cobra.Command {
	cmd := newUserActionCommand("usd-class-transfer", "Builds and signs a USDC move between spot and perp balances",
		func(cmd *cobra.Command, nonce uint64) (*action.Map, error) {
			amount, _ := cmd.Flags().GetFloat64(amountFlag)
			toPerp, _ := cmd.Flags().GetBool(toPerpFlag)
			return wire.UsdClassTransferAction(amount, toPerp, nonce)
		})
	cmd.Flags().Float64(amountFlag, 0, "Amount")
	cmd.Flags().Bool(toPerpFlag, false, "Move from spot to perp instead of perp to spot")
	_ = cmd.MarkFlagRequired(amountFlag)

	return cmd
}

func newApproveAgent() *cobra.Command {
	cmd := newUserActionCommand("approve-agent", "Builds and signs an agent approval",
		func(cmd *cobra.Command, nonce uint64) (*action.Map, error) {
			agent, _ := cmd.Flags().GetString(agentFlag)
			name, _ := cmd.Flags().GetString(agentNameFlag)
			return wire.ApproveAgentAction(agent, name, nonce), nil
		})
	cmd.Flags().String(agentFlag, "", "Agent address")
	cmd.Flags().String(agentNameFlag, "", "Optional agent name")
	_ = cmd.MarkFlagRequired(agentFlag)

	return cmd
}
