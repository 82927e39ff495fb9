package signer_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/wallet/signer"
)

const hardhatKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func privateKey(t *testing.T, h string) *secp256k1.PrivateKey {
	t.Helper()
	b, err := hex.DecodeString(h)
	require.NoError(t, err)
	return secp256k1.PrivKeyFromBytes(b)
}

func digestFromHex(t *testing.T, h string) keccak.Digest {
	t.Helper()
	b, err := hex.DecodeString(h)
	require.NoError(t, err)
	d, ok := keccak.DigestFromBytes(b)
	require.True(t, ok)
	return d
}

func randomDigest(t *testing.T) keccak.Digest {
	t.Helper()
	var d keccak.Digest
	_, err := rand.Read(d[:])
	require.NoError(t, err)
	return d
}

func TestSignGolden(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		digest keccak.Digest
		r      string
		s      string
		v      byte
	}{
		{
			name:   "key one over keccak(hello)",
			key:    "0000000000000000000000000000000000000000000000000000000000000001",
			digest: keccak.Sum([]byte("hello")),
			r:      "0x433ec3d37e4f1253df15e2dea412fed8e915737730f74b3dfb1353268f932ef5",
			s:      "0x557c9158e0b34bce39de28d11797b42e9b1acb2749230885fe075aedc3e491a4",
			v:      27,
		},
		{
			name:   "phantom agent mainnet",
			key:    hardhatKey,
			digest: digestFromHex(t, "f90176e0e223f98d123c7d06bfbbd3ead7a3f3e6b5c429af4136e71daba3cb3e"),
			r:      "0x71be3452426d90296d3103cab6ef14a81374a380c47e9df7c36c9a6b300d0b6a",
			s:      "0x65213bd6edd3ac6d6fa68e50e8110ee19f8ea48557da551a9a18affb4e282395",
			v:      28,
		},
		{
			name:   "phantom agent testnet",
			key:    hardhatKey,
			digest: digestFromHex(t, "d5e69583ce75dad9480b24894a2f2fb951398623e8f51612ab67899bd8efc302"),
			r:      "0x656702c5b0dece218e806da9a1a0d9e06dda2d4fb1769ff505cdf2075bc5ea7f",
			s:      "0x1fc1a9411c2513179a6ba7426e57ea9e490160a772c2b051cd568623f9ff2df8",
			v:      27,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priv := privateKey(t, tt.key)
			sig, err := signer.Sign(&priv.Key, priv.PubKey(), tt.digest)
			require.NoError(t, err)
			assert.Equal(t, tt.r, sig.RHex())
			assert.Equal(t, tt.s, sig.SHex())
			assert.Equal(t, tt.v, sig.V)
		})
	}
}

func TestSignIsDeterministic(t *testing.T) {
	priv := privateKey(t, hardhatKey)
	d := randomDigest(t)

	a, err := signer.Sign(&priv.Key, priv.PubKey(), d)
	require.NoError(t, err)
	b, err := signer.Sign(&priv.Key, priv.PubKey(), d)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSignRandomizedRecovery(t *testing.T) {
	for i := 0; i < 1000; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)
		d := randomDigest(t)

		sig, err := signer.Sign(&priv.Key, priv.PubKey(), d)
		require.NoError(t, err)

		var s secp256k1.ModNScalar
		s.SetBytes(&sig.S)
		require.False(t, s.IsOverHalfOrder(), "high s at iteration %d", i)
		require.Contains(t, []byte{27, 28}, sig.V)

		pub, err := signer.RecoverPublicKey(d, sig)
		require.NoError(t, err)
		require.True(t, pub.IsEqual(priv.PubKey()), "recovered wrong key at iteration %d", i)
	}
}

func TestSignMatchesGoEthereum(t *testing.T) {
	for i := 0; i < 200; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)
		d := randomDigest(t)

		sig, err := signer.Sign(&priv.Key, priv.PubKey(), d)
		require.NoError(t, err)

		ecdsaKey, err := ethcrypto.ToECDSA(priv.Serialize())
		require.NoError(t, err)
		want, err := ethcrypto.Sign(d[:], ecdsaKey)
		require.NoError(t, err)

		got := sig.Bytes()
		got[64] -= signer.RecoveryIDOffset
		require.Equal(t, want, got)
	}
}

func TestSignMatchesDecredCompact(t *testing.T) {
	for i := 0; i < 200; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)
		d := randomDigest(t)

		sig, err := signer.Sign(&priv.Key, priv.PubKey(), d)
		require.NoError(t, err)

		compact := ecdsa.SignCompact(priv, d[:], false)
		require.Equal(t, sig.V, compact[0])
		require.Equal(t, sig.R[:], compact[1:33])
		require.Equal(t, sig.S[:], compact[33:65])
	}
}

func TestRecoverAddress(t *testing.T) {
	priv := privateKey(t, hardhatKey)
	d := keccak.Sum([]byte("hello"))

	sig, err := signer.Sign(&priv.Key, priv.PubKey(), d)
	require.NoError(t, err)

	addr, err := signer.RecoverAddress(d, sig)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr.Hex())

	ecdsaKey, err := ethcrypto.ToECDSA(priv.Serialize())
	require.NoError(t, err)
	assert.Equal(t, ethcrypto.PubkeyToAddress(ecdsaKey.PublicKey), addr)
}

func TestSignRejectsMismatchedPublicKey(t *testing.T) {
	priv := privateKey(t, hardhatKey)
	other, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	_, err = signer.Sign(&priv.Key, other.PubKey(), randomDigest(t))
	assert.ErrorIs(t, err, signer.ErrSignatureRecovery)
}

func TestSignRejectsInvalidKey(t *testing.T) {
	priv := privateKey(t, hardhatKey)

	_, err := signer.Sign(nil, priv.PubKey(), randomDigest(t))
	assert.ErrorIs(t, err, signer.ErrInvalidKey)

	var zero secp256k1.ModNScalar
	_, err = signer.Sign(&zero, priv.PubKey(), randomDigest(t))
	assert.ErrorIs(t, err, signer.ErrInvalidKey)
}

func TestRecoverPublicKeyRejectsMalformed(t *testing.T) {
	d := randomDigest(t)

	_, err := signer.RecoverPublicKey(d, &signer.Signature{V: 27})
	assert.ErrorIs(t, err, signer.ErrInvalidSignature)

	sig := &signer.Signature{V: 29}
	sig.R[31], sig.S[31] = 1, 1
	_, err = signer.RecoverPublicKey(d, sig)
	assert.ErrorIs(t, err, signer.ErrInvalidSignature)

	sig.V = 27
	for i := range sig.S {
		sig.S[i] = 0xff
	}
	_, err = signer.RecoverPublicKey(d, sig)
	assert.ErrorIs(t, err, signer.ErrInvalidSignature)
}
