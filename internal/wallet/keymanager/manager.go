package keymanager

import (
	"runtime"
	"strings"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/util/hexconv"
	"github/chapool/hl-signer/internal/wallet/signer"
)

const privateKeyLength = 32

// secret holds the scalar in its own allocation so a runtime cleanup can zero
// it without keeping the manager reachable.
type secret struct {
	key secp256k1.ModNScalar
}

func (s *secret) zero() {
	s.key.Zero()
}

// manager implements Manager with thread-safe access to the key
type manager struct {
	mu          sync.RWMutex
	secret      *secret
	publicKey   *secp256k1.PublicKey
	address     string
	initialized bool
}

// ImportPrivateKey loads a 32-byte hex key (0x prefix optional). The value must
// lie in [1, n-1].
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func ImportPrivateKey(hexKey string) (Manager, error) {
	b, err := hexconv.DecodeHex(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKey, "key is not valid hex")
	}
	defer zeroBytes(b)

	m, err := newManager(b)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func newManager(keyBytes []byte) (*manager, error) {
	if len(keyBytes) != privateKeyLength {
		return nil, errors.Wrapf(ErrInvalidKey, "key must be %d bytes, got %d", privateKeyLength, len(keyBytes))
	}

	sec := &secret{}
	if overflow := sec.key.SetByteSlice(keyBytes); overflow || sec.key.IsZero() {
		sec.zero()
		return nil, errors.Wrap(ErrInvalidKey, "key is outside [1, n-1]")
	}

	var point secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&sec.key, &point)
	point.ToAffine()
	pub := secp256k1.NewPublicKey(&point.X, &point.Y)

	m := &manager{
		secret:      sec,
		publicKey:   pub,
		address:     strings.ToLower(signer.Address(pub).Hex()),
		initialized: true,
	}
	runtime.AddCleanup(m, (*secret).zero, sec)

	return m, nil
}

func (m *manager) Address() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.address
}

func (m *manager) PublicKey() PublicKey {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return newPublicKey(m.publicKey)
}

// Sign signs digest with the held key
func (m *manager) Sign(digest keccak.Digest) (*signer.Signature, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return nil, ErrNotInitialized
	}

	return signer.Sign(&m.secret.key, m.publicKey, digest)
}

// IsInitialized checks if the key is still held
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear clears the key from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.secret != nil {
		m.secret.zero()
	}
	m.initialized = false
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
