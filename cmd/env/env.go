package env

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

Key material is never printed.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEnv()
		},
	}
}

func runEnv() error {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal the env")
	}

	fmt.Println(string(c))

	return nil
}
