package keccak_test

import (
	"crypto/sha3"
	"encoding/hex"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/crypto/keccak"
)

func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"test", "test", "9c22ff5f21f0b81b113e63f7db6da94fedef11b2119b4088b89664fb9a3cb658"},
		{"hello", "hello", "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := keccak.Sum([]byte(tt.input))
			assert.Equal(t, tt.want, hex.EncodeToString(d[:]))
			assert.Equal(t, "0x"+tt.want, d.Hex())
		})
	}
}

func TestSumIsNotSHA3(t *testing.T) {
	d := keccak.Sum([]byte("test"))
	nist := sha3.Sum256([]byte("test"))
	assert.NotEqual(t, nist[:], d[:])
}

func TestSumConcatenates(t *testing.T) {
	whole := keccak.Sum([]byte("hello world"))
	parts := keccak.Sum([]byte("hello"), []byte(" "), []byte("world"))
	assert.Equal(t, whole, parts)
}

func TestSumMatchesGoEthereum(t *testing.T) {
	inputs := [][]byte{nil, {0x00}, []byte("hyperliquid"), make([]byte, 200)}
	for _, in := range inputs {
		d := keccak.Sum(in)
		assert.Equal(t, ethcrypto.Keccak256(in), d.Bytes())
	}
}

func TestDigestFromBytes(t *testing.T) {
	src := keccak.Sum([]byte("x"))

	d, ok := keccak.DigestFromBytes(src.Bytes())
	require.True(t, ok)
	assert.Equal(t, src, d)
	assert.False(t, d.IsZero())

	_, ok = keccak.DigestFromBytes(make([]byte, 31))
	assert.False(t, ok)

	var zero keccak.Digest
	assert.True(t, zero.IsZero())
}
