package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/test"
	"github/chapool/hl-signer/internal/util/command"
)

func TestWithServer(t *testing.T) {
	ctx := t.Context()

	var testError = errors.New("test error")

	cfg := test.Config()
	cfg.Logger.PrettyPrintConsole = false

	var keys interface{ IsInitialized() bool }
	resultErr := command.WithServer(ctx, cfg, func(_ context.Context, s *api.Server) error {
		assert.Equal(t, test.Address, s.Signing.Address())
		assert.True(t, s.Keys.IsInitialized())
		keys = s.Keys

		return testError
	})

	assert.Equal(t, testError, resultErr)

	// the key is wiped on shutdown
	require.NotNil(t, keys)
	assert.False(t, keys.IsInitialized())
}

func TestWithServerInitError(t *testing.T) {
	cfg := test.Config()
	cfg.Signer.PrivateKey = ""
	cfg.Signer.PromptForKey = false

	called := false
	err := command.WithServer(t.Context(), cfg, func(_ context.Context, _ *api.Server) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, api.ErrNoKeyConfigured)
	assert.False(t, called)
}

func TestNewSubcommandGroup(t *testing.T) {
	child := command.NewSubcommandGroup("child")
	group := command.NewSubcommandGroup("group", child)

	assert.Equal(t, "group", group.Use)
	assert.Equal(t, "group related subcommands", group.Short)
	require.Len(t, group.Commands(), 1)
	assert.Equal(t, "child", group.Commands()[0].Name())
}
