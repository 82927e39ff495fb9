package signer

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidKey        = errors.New("invalid private key")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrSignatureRecovery = errors.New("signature recovery failed")
	ErrNonceExhausted    = errors.New("nonce generation exhausted")
)
