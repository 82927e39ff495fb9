package keymanager

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidKey      = errors.New("invalid private key")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrNotInitialized  = errors.New("key manager not initialized")
)
