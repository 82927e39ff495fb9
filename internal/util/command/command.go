package command

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/util"
)

const shutdownTimeout = 10 * time.Second

// NewSubcommandGroup returns a command that only groups subCmds and prints
// its help when invoked on its own.
func NewSubcommandGroup(name string, subCmds ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("%s related subcommands", name),
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subCmds...)

	return cmd
}

// WithServer configures the global logger, initializes a server from config
// and runs f with it. The server is shut down and its key wiped once f returns.
func WithServer(ctx context.Context, config config.Server, f func(ctx context.Context, s *api.Server) error) error {
	util.ConfigureGlobalLogger(config.Logger.Level.String(), config.Logger.PrettyPrintConsole)

	s, err := api.InitNewServer(config)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	return f(ctx, s)
}
