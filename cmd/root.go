package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/cmd/address"
	"github/chapool/hl-signer/cmd/env"
	"github/chapool/hl-signer/cmd/hash"
	"github/chapool/hl-signer/cmd/keystore"
	"github/chapool/hl-signer/cmd/probe"
	"github/chapool/hl-signer/cmd/server"
	"github/chapool/hl-signer/cmd/sign"
	"github/chapool/hl-signer/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "hl-signer",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Signs Hyperliquid exchange actions with a locally held secp256k1 key.
Runs as a one-shot CLI or as a local signing daemon.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		address.New(),
		env.New(),
		hash.New(),
		keystore.New(),
		probe.New(),
		server.New(),
		sign.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
