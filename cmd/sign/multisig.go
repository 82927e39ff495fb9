package sign

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/util/command"
)

func newMultiSig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multisig",
		Short: "Signs the SendMultiSig envelope of an inner action",
		RunE: runWithServer(runMultiSig),
	}

	addL1Flags(cmd)

	return cmd
}

func runMultiSig(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	src, _ := cmd.Flags().GetString(actionFlag)
	doc, err := command.ReadDocument(cmd, src)
	if err != nil {
		return err
	}

	act := action.NewMap()
	if err := act.UnmarshalJSON(doc); err != nil {
		return errors.Wrap(err, "failed to parse action")
	}

	opts, err := readL1Options(cmd, s)
	if err != nil {
		return err
	}

	res, err := s.Signing.SignMultiSigAction(ctx, &signing.MultiSigRequest{
		Action:       act,
		Nonce:        opts.nonce,
		VaultAddress: opts.vaultAddress,
		ExpiresAfter: opts.expiresAfter,
		Mainnet:      mainnet(cmd, s),
	})
	if err != nil {
		return errors.Wrap(err, "failed to sign multi-sig envelope")
	}
	res.Action = nil

	return command.PrintJSON(cmd, signing.NewSignResponse(s.Signing.Address(), res, &opts.nonce))
}
