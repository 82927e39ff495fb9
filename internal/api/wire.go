//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/metrics"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/wallet/keymanager"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewClock,
	NewNonceSource,
	signing.NewService,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewKeyManager)
	return new(Server), nil
}

// InitNewServerWithKeys returns a new Server instance signing with the given key manager.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithKeys(
	_ config.Server,
	_ keymanager.Manager,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
