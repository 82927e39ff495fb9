// Package keccak implements the pre-standard Keccak-256 hash used by Ethereum
// and the Hyperliquid signing scheme.
//
// Keccak-256 pads with the 0x01 domain suffix. It is NOT interchangeable with
// NIST SHA3-256 (0x06 suffix), which produces different digests for the same input.
package keccak

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Size is the length of a Keccak-256 digest in bytes.
const Size = 32

// Digest is a raw Keccak-256 output.
type Digest [Size]byte

// Sum hashes the concatenation of all given byte slices.
func Sum(data ...[]byte) Digest {
	hasher := sha3.NewLegacyKeccak256()
	for _, b := range data {
		hasher.Write(b)
	}

	var d Digest
	hasher.Sum(d[:0])
	return d
}

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// Hex returns the digest as lowercase hex with a 0x prefix.
func (d Digest) Hex() string {
	return "0x" + hex.EncodeToString(d[:])
}

func (d Digest) String() string { return d.Hex() }

// IsZero reports whether every byte of the digest is zero.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// DigestFromBytes copies b into a Digest. ok is false if b is not exactly Size bytes long.
func DigestFromBytes(b []byte) (d Digest, ok bool) {
	if len(b) != Size {
		return d, false
	}
	copy(d[:], b)
	return d, true
}
