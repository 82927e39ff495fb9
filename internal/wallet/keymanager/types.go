package keymanager

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/util/hexconv"
	"github/chapool/hl-signer/internal/wallet/signer"
)

// Manager owns a single private key. The key never leaves the manager; callers
// sign through it and must call Clear when done.
type Manager interface {
	// Address returns the 0x-prefixed lowercase address of the key
	Address() string

	// PublicKey returns the public point of the key
	PublicKey() PublicKey

	// Sign signs a 32-byte digest
	Sign(digest keccak.Digest) (*signer.Signature, error)

	// IsInitialized reports whether the key is still held
	IsInitialized() bool

	// Clear zeroes the key. Subsequent Sign calls fail with ErrNotInitialized.
	Clear()
}

// PublicKey is the affine public point of a key.
type PublicKey struct {
	X [32]byte
	Y [32]byte
}

func newPublicKey(pub *secp256k1.PublicKey) PublicKey {
	var p PublicKey
	uncompressed := pub.SerializeUncompressed()
	copy(p.X[:], uncompressed[1:33])
	copy(p.Y[:], uncompressed[33:65])
	return p
}

// Uncompressed returns 0x04 ‖ X ‖ Y.
func (p PublicKey) Uncompressed() []byte {
	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	out = append(out, p.X[:]...)
	return append(out, p.Y[:]...)
}

func (p PublicKey) Hex() string {
	return hexconv.EncodeHex(p.Uncompressed())
}

// Secp256k1 parses the point back into a curve public key.
func (p PublicKey) Secp256k1() (*secp256k1.PublicKey, error) {
	return secp256k1.ParsePubKey(p.Uncompressed())
}
