package probe

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Checks that the daemon answers HTTP requests",
		Long: `Checks that the daemon answers HTTP requests

Exits non-zero when the metrics endpoint is unreachable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check(cmd.Context(), cmd, http.DefaultClient, "/metrics")
		},
	}

	addFlags(cmd)

	return cmd
}
