package sign

import (
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/util/command"
)

const (
	actionFlag       = "action"
	nonceFlag        = "nonce"
	vaultFlag        = "vault"
	expiresAfterFlag = "expires-after"
	mainnetFlag      = "mainnet"
	primaryTypeFlag  = "primary-type"
	typesFlag        = "types"
)

func addNetworkFlag(cmd *cobra.Command) {
	cmd.Flags().Bool(mainnetFlag, false, "Sign for mainnet, defaults to HL_SIGNER_MAINNET")
}

func addActionFlags(cmd *cobra.Command) {
	cmd.Flags().String(actionFlag, "", "Action JSON, reads stdin when empty or -")
	addNetworkFlag(cmd)
}

// addL1OptionFlags adds the flags hashed next to an L1 action.
func addL1OptionFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64(nonceFlag, 0, "Action nonce, defaults to the current time in milliseconds")
	cmd.Flags().String(vaultFlag, "", "Optional vault or sub-account address")
	cmd.Flags().Uint64(expiresAfterFlag, 0, "Optional expiry in milliseconds")
}

func addL1Flags(cmd *cobra.Command) {
	addActionFlags(cmd)
	addL1OptionFlags(cmd)
}

// mainnet returns the --mainnet flag when set and the configured network otherwise.
func mainnet(cmd *cobra.Command, s *api.Server) bool {
	if !cmd.Flags().Changed(mainnetFlag) {
		return s.Config.Signer.Mainnet
	}

	v, _ := cmd.Flags().GetBool(mainnetFlag)
	return v
}

// l1Options holds the flags shared by the L1 and multi-sig commands.
type l1Options struct {
	nonce        uint64
	vaultAddress *string
	expiresAfter *uint64
}

func readL1Options(cmd *cobra.Command, s *api.Server) (*l1Options, error) {
	expiresAfter, err := command.OptionalUint64(cmd, expiresAfterFlag)
	if err != nil {
		return nil, err
	}

	vault, _ := cmd.Flags().GetString(vaultFlag)
	opts := &l1Options{
		vaultAddress: command.OptionalString(vault),
		expiresAfter: expiresAfter,
	}

	if cmd.Flags().Changed(nonceFlag) {
		opts.nonce, _ = cmd.Flags().GetUint64(nonceFlag)
	} else {
		opts.nonce = s.Nonces.Next()
	}

	return opts, nil
}
