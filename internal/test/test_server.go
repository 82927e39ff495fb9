package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/api/router"
	"github/chapool/hl-signer/internal/config"
)

// PrivateKey is the well-known first development account of the local
// Ethereum test chains. It must never hold funds.
const PrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// Address belongs to PrivateKey.
const Address = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"

// Config returns the default service config signing with PrivateKey.
func Config() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Signer.PrivateKey = PrivateKey
	cfg.Signer.Mnemonic = ""
	cfg.Signer.PromptForKey = false
	cfg.Signer.Mainnet = false

	return cfg
}

// WithTestServer returns a fully configured server signing with PrivateKey.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, Config(), closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing
// for configuration of the service.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServer(cfg)
	require.NoError(t, err, "Failed to initialize test server")

	router.Init(s)

	closure(s)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}
