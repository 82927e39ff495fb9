package keymanager

import (
	"crypto/sha512"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultDerivationPath is the first Ethereum account.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

const (
	pbkdf2Iterations = 2048 // BIP39 standard iterations
	pbkdf2KeyLength  = 64   // BIP39 standard key length (512 bits)

	hardenedOffset = 0x80000000
)

// ImportMnemonic derives a key from a BIP39 mnemonic and a BIP32 path.
// An empty path selects DefaultDerivationPath.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func ImportMnemonic(mnemonic string, passphrase string, path string) (Manager, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	if path == "" {
		path = DefaultDerivationPath
	}

	// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
	seed := pbkdf2.Key([]byte(mnemonic), []byte("mnemonic"+passphrase), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	defer zeroBytes(seed)

	key, err := deriveKey(seed, path)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(key)

	m, err := newManager(key)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// deriveKey walks path from the master key of seed and returns the child's
// private key bytes. Caller must clear the result.
func deriveKey(seed []byte, path string) ([]byte, error) {
	indices, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	if len(key.Key) > privateKeyLength {
		return nil, errors.Errorf("derived key has %d bytes", len(key.Key))
	}

	out := make([]byte, privateKeyLength)
	copy(out[privateKeyLength-len(key.Key):], key.Key)
	zeroBytes(key.Key)

	return out, nil
}

// ParseDerivationPath parses "m/44'/60'/0'/0/0" into child indices.
// Hardened segments may use ' or h.
func ParseDerivationPath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, errors.Errorf("invalid derivation path %q", path)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h")
		if hardened {
			seg = seg[:len(seg)-1]
		}

		n, err := strconv.ParseUint(seg, 10, 31)
		if err != nil {
			return nil, errors.Errorf("invalid path segment %q in %q", seg, path)
		}

		index := uint32(n)
		if hardened {
			index += hardenedOffset
		}
		indices = append(indices, index)
	}

	return indices, nil
}
