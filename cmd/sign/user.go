package sign

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/crypto/eip712"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/util/command"
)

func newUser() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Signs a user-signed action such as a transfer or an agent approval",
		Long: `Signs a user-signed action over the HyperliquidSignTransaction domain.

The EIP-712 type is looked up from the action's "type" unless --primary-type and --types are given.
The printed action includes the chain fields that were signed.`,
		RunE: runWithServer(runUser),
	}

	addActionFlags(cmd)
	cmd.Flags().String(primaryTypeFlag, "", "EIP-712 primary type, e.g. HyperliquidTransaction:UsdSend")
	cmd.Flags().String(typesFlag, "", `Members of the primary type as JSON, e.g. [{"name":"amount","type":"string"}]`)
	cmd.MarkFlagsRequiredTogether(primaryTypeFlag, typesFlag)

	return cmd
}

func runUser(ctx context.Context, cmd *cobra.Command, s *api.Server) error {
	src, _ := cmd.Flags().GetString(actionFlag)
	doc, err := command.ReadDocument(cmd, src)
	if err != nil {
		return err
	}

	act := action.NewMap()
	if err := act.UnmarshalJSON(doc); err != nil {
		return errors.Wrap(err, "failed to parse action")
	}

	primaryType, _ := cmd.Flags().GetString(primaryTypeFlag)
	rawTypes, _ := cmd.Flags().GetString(typesFlag)

	var fields []eip712.Field
	if rawTypes != "" {
		if err := json.Unmarshal([]byte(rawTypes), &fields); err != nil {
			return errors.Wrap(err, "failed to parse types")
		}
	}

	return signUser(ctx, cmd, s, &signing.UserSignedRequest{
		Action:      act,
		PrimaryType: primaryType,
		Fields:      fields,
	})
}

// signUser signs req on the network selected by cmd and prints the result.
func signUser(ctx context.Context, cmd *cobra.Command, s *api.Server, req *signing.UserSignedRequest) error {
	req.Mainnet = mainnet(cmd, s)

	res, err := s.Signing.SignUserSignedAction(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to sign action")
	}

	return command.PrintJSON(cmd, signing.NewSignResponse(s.Signing.Address(), res, nil))
}
