package sign

import (
	"context"

	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("sign",
		newL1(),
		newMultiSig(),
		newUser(),
		newOrder(),
		newModify(),
		newCancel(),
		newLeverage(),
		newScheduleCancel(),
		newUsdSend(),
		newSpotSend(),
		newWithdraw(),
		newUsdClassTransfer(),
		newApproveAgent(),
	)
}

// runWithServer adapts fn to cobra's RunE, loading the key from the environment.
func runWithServer(fn func(ctx context.Context, cmd *cobra.Command, s *api.Server) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
			return fn(ctx, cmd, s)
		})
	}
}
