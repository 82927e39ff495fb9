package sign

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util/command"
)

func newL1() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "l1",
		Short: "Signs an L1 action such as an order or a cancel",
		Long: `Signs an L1 action through a phantom agent.

The action is read as JSON from --action or stdin. Object keys are hashed in document order.`,
		RunE: runWithServer(runL1),
	}

	addL1Flags(cmd)

	return cmd
}

func runL1(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	src, _ := cmd.Flags().GetString(actionFlag)
	doc, err := command.ReadDocument(cmd, src)
	if err != nil {
		return err
	}

	var act action.Value
	if err := act.UnmarshalJSON(doc); err != nil {
		return errors.Wrap(err, "failed to parse action")
	}

	res, err := signL1(ctx, cmd, s, act)
	if err != nil {
		return err
	}

	return command.PrintJSON(cmd, res)
}

// signL1 signs act with the nonce, vault and expiry flags of cmd.
func signL1(ctx context.Context, cmd *cobra.Command, s *api.Server, act action.Value) (*types.SignResponse, error) {
	opts, err := readL1Options(cmd, s)
	if err != nil {
		return nil, err
	}

	res, err := s.Signing.SignL1Action(ctx, &signing.L1Request{
		Action:       act,
		Nonce:        opts.nonce,
		VaultAddress: opts.vaultAddress,
		ExpiresAfter: opts.expiresAfter,
		Mainnet:      mainnet(cmd, s),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign action")
	}

	return signing.NewSignResponse(s.Signing.Address(), res, &opts.nonce), nil
}

// signBuiltL1 signs an action built from flags and prints it with the
// signature, ready to be submitted.
func signBuiltL1(ctx context.Context, cmd *cobra.Command, s *api.Server, act action.Value) error {
	res, err := signL1(ctx, cmd, s, act)
	if err != nil {
		return err
	}
	res.Action, _ = act.AsMap()

	return command.PrintJSON(cmd, res)
}
