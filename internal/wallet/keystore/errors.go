package keystore

import (
	"github.com/pkg/errors"
)

var (
	ErrDecrypt            = errors.New("could not decrypt key with given passphrase")
	ErrUnsupportedVersion = errors.New("unsupported keystore version")
	ErrUnsupportedCipher  = errors.New("unsupported keystore cipher")
	ErrUnsupportedKDF     = errors.New("unsupported keystore kdf")
	ErrMalformed          = errors.New("malformed keystore")
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
