package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/wallet/signer"
	"golang.org/x/crypto/scrypt"
)

const (
	keyLength  = 32
	saltLength = 32
	ivLength   = aes.BlockSize
	dkLength   = 32
)

// Encrypt seals a 32-byte private key with passphrase into a keystore v3
// document using scrypt and AES-128-CTR.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func Encrypt(key []byte, passphrase string, params ScryptParams) (*KeyJSON, error) {
	if len(key) != keyLength {
		return nil, errors.Wrapf(ErrInvalidKeyMaterial, "key must be %d bytes, got %d", keyLength, len(key))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(key); overflow || scalar.IsZero() {
		return nil, errors.Wrap(ErrInvalidKeyMaterial, "key is outside [1, n-1]")
	}
	priv := secp256k1.NewPrivateKey(&scalar)
	pub := priv.PubKey()
	priv.Zero()
	scalar.Zero()

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	derivedKey, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, dkLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	defer zeroBytes(derivedKey)

	ciphertext, err := aesCTR(derivedKey[:16], iv, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt key")
	}

	return &KeyJSON{
		Address: strings.TrimPrefix(strings.ToLower(signer.Address(pub).Hex()), "0x"),
		ID:      uuid.NewString(),
		Version: version,
		Crypto: CryptoJSON{
			Cipher:       cipherAES128,
			Ciphertext:   hex.EncodeToString(ciphertext),
			CipherParams: CipherParamsJSON{IV: hex.EncodeToString(iv)},
			KDF:          kdfScrypt,
			KDFParams: KDFParamsJSON{
				DKLen: dkLength,
				Salt:  hex.EncodeToString(salt),
				N:     params.N,
				R:     params.R,
				P:     params.P,
			},
			MAC: hex.EncodeToString(mac(derivedKey, ciphertext)),
		},
	}, nil
}

// aesCTR is its own inverse.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func aesCTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}

// mac is keccak256(derivedKey[16:32] ‖ ciphertext).
func mac(derivedKey []byte, ciphertext []byte) []byte {
	return keccak.Sum(derivedKey[16:32], ciphertext).Bytes()
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
