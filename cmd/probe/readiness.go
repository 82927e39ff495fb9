package probe

import (
	"net/http"

	"github.com/spf13/cobra"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Checks that the daemon is ready to sign",
		Long: `Checks that the daemon is ready to sign

Exits non-zero unless /-/ready answers 200, i.e. the server is initialized and holds a key.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check(cmd.Context(), cmd, http.DefaultClient, "/-/ready")
		},
	}

	addFlags(cmd)

	return cmd
}
