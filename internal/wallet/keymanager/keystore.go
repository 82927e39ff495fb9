package keymanager

import (
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/wallet/keystore"
)

// ImportKeystore decrypts an Ethereum keystore v3 file.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func ImportKeystore(path string, passphrase string) (Manager, error) {
	k, err := keystore.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key, err := keystore.Decrypt(k, passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt keystore")
	}
	defer zeroBytes(key)

	m, err := newManager(key)
	if err != nil {
		return nil, err
	}

	return m, nil
}
