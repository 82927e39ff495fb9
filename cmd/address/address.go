package address

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Prints the address of the configured signing key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()

			return command.WithServer(cmd.Context(), cfg, func(_ context.Context, s *api.Server) error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", s.Signing.Address(), signing.Network(s.Config.Signer.Mainnet))
				return nil
			})
		},
	}
}
