// Package signer produces deterministic, canonical secp256k1 signatures over
// 32-byte digests and recovers signers from them.
//
// Nonces follow RFC 6979 with HMAC-SHA256, s is normalized to the lower half
// of the curve order and the recovery id is found by reconstructing the public
// key for both y-parities of R. The package holds no state; callers own the key.
package signer

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/crypto/keccak"
)

// maxNonceIterations bounds the RFC 6979 candidate loop. Each rejected
// candidate has probability around 2^-128, so hitting the cap means the
// hash backend is broken.
const maxNonceIterations = 64

// Sign signs digest with key. pub must be key·G; it is used to select the
// recovery id and a mismatch surfaces as ErrSignatureRecovery.
func Sign(key *secp256k1.ModNScalar, pub *secp256k1.PublicKey, digest keccak.Digest) (*Signature, error) {
	if key == nil || key.IsZero() || pub == nil {
		return nil, ErrInvalidKey
	}

	keyBytes := key.Bytes()
	defer func() {
		for i := range keyBytes {
			keyBytes[i] = 0
		}
	}()

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest[:])

	for iteration := uint32(0); iteration < maxNonceIterations; iteration++ {
		// candidates outside [1, n-1] are skipped inside the generator
		k := secp256k1.NonceRFC6979(keyBytes[:], digest[:], nil, nil, iteration)
		r, s, ok := signWithNonce(key, k, &e)
		k.Zero()
		if !ok {
			continue
		}

		v, err := recoveryID(r, s, &e, pub)
		if err != nil {
			return nil, err
		}

		sig := &Signature{V: v + RecoveryIDOffset}
		r.PutBytes(&sig.R)
		s.PutBytes(&sig.S)
		return sig, nil
	}

	return nil, errors.Wrapf(ErrNonceExhausted, "no usable nonce after %d candidates", maxNonceIterations)
}

// signWithNonce computes (r, s) for nonce k, returning ok=false when k must be
// discarded: r or s is zero, or R.x is not below n and r would not identify R.
func signWithNonce(key, k, e *secp256k1.ModNScalar) (*secp256k1.ModNScalar, *secp256k1.ModNScalar, bool) {
	var point secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &point)
	point.ToAffine()

	xBytes := point.X.Bytes()
	var r secp256k1.ModNScalar
	// R.x >= n (odds near 2^-128) is skipped rather than reduced so that the
	// recovery id stays 0 or 1. Signers that reduce would differ only there.
	if overflow := r.SetBytes(xBytes); overflow != 0 || r.IsZero() {
		return nil, nil, false
	}

	var kInv, s secp256k1.ModNScalar
	kInv.InverseValNonConst(k)
	s.Mul2(&r, key).Add(e).Mul(&kInv)
	kInv.Zero()
	if s.IsZero() {
		return nil, nil, false
	}

	if s.IsOverHalfOrder() {
		s.Negate()
	}

	return &r, &s, true
}

func recoveryID(r, s, e *secp256k1.ModNScalar, pub *secp256k1.PublicKey) (byte, error) {
	for id := byte(0); id < 2; id++ {
		candidate, ok := recoverPoint(r, s, e, id == 1)
		if ok && candidate.IsEqual(pub) {
			return id, nil
		}
	}
	return 0, errors.Wrap(ErrSignatureRecovery, "no recovery id reproduces the signing key")
}
