package keystore

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Decrypt opens a keystore v3 document and returns the private key bytes.
// Caller must clear the result.
func Decrypt(k *KeyJSON, passphrase string) ([]byte, error) {
	if k == nil {
		return nil, errors.Wrap(ErrMalformed, "keystore is nil")
	}
	if k.Version != version {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", k.Version)
	}
	if k.Crypto.Cipher != cipherAES128 {
		return nil, errors.Wrapf(ErrUnsupportedCipher, "cipher %q", k.Crypto.Cipher)
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(k.Crypto.CipherParams.IV)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "failed to decode IV")
	}

	ciphertext, err := hex.DecodeString(k.Crypto.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "failed to decode ciphertext")
	}

	expectedMAC, err := hex.DecodeString(k.Crypto.MAC)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "failed to decode MAC")
	}

	derivedKey, err := deriveKey(&k.Crypto, passphrase)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(derivedKey)

	if subtle.ConstantTimeCompare(mac(derivedKey, ciphertext), expectedMAC) != 1 {
		return nil, ErrDecrypt
	}

	key, err := aesCTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt key")
	}

	return key, nil
}

func deriveKey(c *CryptoJSON, passphrase string) ([]byte, error) {
	p := c.KDFParams

	salt, err := hex.DecodeString(p.Salt)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "failed to decode salt")
	}

	// the MAC and cipher key together need 32 bytes
	if p.DKLen < dkLength {
		return nil, errors.Wrapf(ErrMalformed, "dklen %d is too short", p.DKLen)
	}

	switch c.KDF {
	case kdfScrypt:
		key, err := scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, p.DKLen)
		if err != nil {
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
		return key, nil
	case kdfPBKDF2:
		if p.PRF != prfHMACSHA256 {
			return nil, errors.Wrapf(ErrUnsupportedKDF, "pbkdf2 prf %q", p.PRF)
		}
		if p.C <= 0 {
			return nil, errors.Wrap(ErrMalformed, "pbkdf2 iteration count must be positive")
		}
		return pbkdf2.Key([]byte(passphrase), salt, p.C, p.DKLen, sha256.New), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedKDF, "kdf %q", c.KDF)
	}
}
