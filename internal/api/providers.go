package api

import (
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/util"
	"github/chapool/hl-signer/internal/wallet/keymanager"
)

var ErrNoKeyConfigured = errors.New("no signing key configured")

// readSecret is swapped out in tests.
var readSecret = util.ReadSecret

func NewClock() time2.Clock {
	return time2.DefaultClock
}

func NewNonceSource(clock time2.Clock) *signing.NonceSource {
	return signing.NewNonceSource(clock)
}

// NewKeyManager loads the signing key from the configuration, falling back
// to a terminal prompt when no key source is configured.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewKeyManager(cfg config.Server) (keymanager.Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	signer := cfg.Signer

	switch {
	case signer.PrivateKey != "":
		return keymanager.ImportPrivateKey(signer.PrivateKey)
	case signer.Mnemonic != "":
		log.Info().Str("path", signer.DerivationPath).Msg("Deriving signing key from mnemonic")
		return keymanager.ImportMnemonic(signer.Mnemonic, signer.MnemonicPassphrase, signer.DerivationPath)
	case signer.KeystoreFile != "":
		passphrase := signer.KeystorePassphrase
		if passphrase == "" && signer.PromptForKey {
			var err error
			if passphrase, err = readSecret("Keystore passphrase: "); err != nil {
				return nil, errors.Wrap(err, "failed to read keystore passphrase")
			}
		}
		log.Info().Str("file", signer.KeystoreFile).Msg("Decrypting signing key from keystore")
		return keymanager.ImportKeystore(signer.KeystoreFile, passphrase)
	case signer.PromptForKey:
		key, err := readSecret("Private key: ")
		if err != nil {
			return nil, errors.Wrap(ErrNoKeyConfigured, err.Error())
		}
		return keymanager.ImportPrivateKey(key)
	default:
		return nil, ErrNoKeyConfigured
	}
}
