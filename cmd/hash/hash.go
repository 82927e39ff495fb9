package hash

import (
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util/command"
)

const (
	actionFlag       = "action"
	nonceFlag        = "nonce"
	vaultFlag        = "vault"
	expiresAfterFlag = "expires-after"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Computes the hash of an L1 action",
		Long: `Computes the hash of an L1 action without signing it.

The action is read as JSON from --action or stdin. Object keys are hashed in document order.
No signing key is needed.`,
		RunE: runHash,
	}

	cmd.Flags().String(actionFlag, "", "Action JSON, reads stdin when empty or -")
	cmd.Flags().Uint64(nonceFlag, 0, "Action nonce")
	cmd.Flags().String(vaultFlag, "", "Optional vault or sub-account address")
	cmd.Flags().Uint64(expiresAfterFlag, 0, "Optional expiry in milliseconds")

	if err := cmd.MarkFlagRequired(nonceFlag); err != nil {
		panic(err)
	}

	return cmd
}

func runHash(cmd *cobra.Command, _ []string) error {
	src, _ := cmd.Flags().GetString(actionFlag)
	nonce, _ := cmd.Flags().GetUint64(nonceFlag)
	vault, _ := cmd.Flags().GetString(vaultFlag)

	doc, err := command.ReadDocument(cmd, src)
	if err != nil {
		return err
	}

	var act action.Value
	if err := act.UnmarshalJSON(doc); err != nil {
		return errors.Wrap(err, "failed to parse action")
	}

	expiresAfter, err := command.OptionalUint64(cmd, expiresAfterFlag)
	if err != nil {
		return err
	}

	h, err := action.Hash(act, nonce, command.OptionalString(vault), expiresAfter)
	if err != nil {
		return errors.Wrap(err, "failed to hash action")
	}

	return command.PrintJSON(cmd, &types.HashResponse{ActionHash: swag.String(h.Hex())})
}
