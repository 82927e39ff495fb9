package api

import (
	"encoding/hex"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/wallet/keystore"
)

const (
	hardhatKey      = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddress  = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	hardhatMnemonic = "test test test test test test test test test test test junk"
)

func withReadSecret(t *testing.T, secret string, err error) *[]string {
	t.Helper()

	var prompts []string
	orig := readSecret
	readSecret = func(prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return secret, err
	}
	t.Cleanup(func() { readSecret = orig })

	return &prompts
}

func baseConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Signer.PromptForKey = false
	return cfg
}

func TestNewKeyManagerSources(t *testing.T) {
	dir := t.TempDir()
	key, err := hex.DecodeString(hardhatKey[2:])
	require.NoError(t, err)
	k, err := keystore.Encrypt(key, "passphrase", keystore.LightScryptParams())
	require.NoError(t, err)
	keystoreFile := filepath.Join(dir, "key.json")
	require.NoError(t, keystore.WriteFile(keystoreFile, k))

	tests := []struct {
		name   string
		mutate func(cfg *config.Server)
	}{
		{"private key", func(cfg *config.Server) { cfg.Signer.PrivateKey = hardhatKey }},
		{"mnemonic", func(cfg *config.Server) { cfg.Signer.Mnemonic = hardhatMnemonic }},
		{"keystore", func(cfg *config.Server) {
			cfg.Signer.KeystoreFile = keystoreFile
			cfg.Signer.KeystorePassphrase = "passphrase"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts := withReadSecret(t, "", errors.New("must not prompt"))

			cfg := baseConfig()
			tt.mutate(&cfg)

			m, err := NewKeyManager(cfg)
			require.NoError(t, err)
			defer m.Clear()

			assert.Equal(t, hardhatAddress, m.Address())
			assert.Empty(t, *prompts)
		})
	}

	t.Run("keystore passphrase prompt", func(t *testing.T) {
		prompts := withReadSecret(t, "passphrase", nil)

		cfg := baseConfig()
		cfg.Signer.KeystoreFile = keystoreFile
		cfg.Signer.PromptForKey = true

		m, err := NewKeyManager(cfg)
		require.NoError(t, err)
		defer m.Clear()

		assert.Equal(t, hardhatAddress, m.Address())
		assert.Equal(t, []string{"Keystore passphrase: "}, *prompts)
	})
}

func TestNewKeyManagerPrompt(t *testing.T) {
	prompts := withReadSecret(t, hardhatKey, nil)

	cfg := baseConfig()
	cfg.Signer.PromptForKey = true

	m, err := NewKeyManager(cfg)
	require.NoError(t, err)
	defer m.Clear()

	assert.Equal(t, hardhatAddress, m.Address())
	assert.Equal(t, []string{"Private key: "}, *prompts)
}

func TestNewKeyManagerErrors(t *testing.T) {
	t.Run("no source", func(t *testing.T) {
		withReadSecret(t, "", nil)

		_, err := NewKeyManager(baseConfig())
		require.ErrorIs(t, err, ErrNoKeyConfigured)
	})

	t.Run("prompt fails", func(t *testing.T) {
		withReadSecret(t, "", errors.New("not a terminal"))

		cfg := baseConfig()
		cfg.Signer.PromptForKey = true

		_, err := NewKeyManager(cfg)
		require.ErrorIs(t, err, ErrNoKeyConfigured)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Signer.PrivateKey = hardhatKey
		cfg.Signer.Mnemonic = hardhatMnemonic

		_, err := NewKeyManager(cfg)
		require.Error(t, err)
	})
}
