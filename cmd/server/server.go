package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/api/router"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the local signing daemon",
		Long: `Starts the local signing daemon

The key is loaded once at startup and wiped on shutdown.
Requires configuration through ENV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), config.DefaultServiceConfigFromEnv())
		},
	}
}

func runServer(ctx context.Context, cfg config.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		router.Init(s)

		errs := make(chan error, 1)
		go func() {
			if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- err
			}
			close(errs)
		}()

		log.Info().
			Str("address", s.Signing.Address()).
			Str("listen", s.Config.Echo.ListenAddress).
			Bool("mainnet", s.Config.Signer.Mainnet).
			Msg("Signing daemon started")

		select {
		case <-ctx.Done():
			log.Info().Msg("Received shutdown signal")
			return nil
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("Failed to start server")
			return err
		}
	})
}
