package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/metrics"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/util"
	"github/chapool/hl-signer/internal/wallet/keymanager"
)

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1Sign  *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config  config.Server
	Clock   time2.Clock
	Metrics *metrics.Service
	Keys    keymanager.Manager
	Signing signing.Service
	Nonces  *signing.NonceSource
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	m *metrics.Service,
	keys keymanager.Manager,
	signingService signing.Service,
	nonces *signing.NonceSource,
) *Server {
	m.SetKeyLoaded(keys.IsInitialized())

	return &Server{
		Config:  cfg,
		Clock:   clock,
		Metrics: m,
		Keys:    keys,
		Signing: signingService,
		Nonces:  nonces,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	if !s.Keys.IsInitialized() {
		log.Debug().Msg("Signing key is not loaded")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	s.Echo.Server.ReadTimeout = config.ReadTimeout

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

// Shutdown stops the echo server and wipes the signing key.
func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Keys != nil {
		log.Debug().Msg("Clearing signing key")
		s.Keys.Clear()
		s.Metrics.SetKeyLoaded(false)
	}

	return errs
}
