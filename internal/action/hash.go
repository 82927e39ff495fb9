package action

import (
	"encoding/binary"

	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/util/hexconv"
)

const (
	addressLength = 20

	vaultAbsent  = 0x00
	vaultPresent = 0x01
	expiresTag   = 0x00
)

// Preimage returns the bytes hashed by Hash:
//
//	msgpack(action) ‖ nonce (8 bytes BE) ‖ vault tag [‖ 20 address bytes] [‖ 0x00 ‖ expiresAfter (8 bytes BE)]
//
// The vault tag is 0x00 when vaultAddress is nil and 0x01 followed by the
// decoded address otherwise. The expiry block is only present when expiresAfter
// is non-nil.
func Preimage(action Value, nonce uint64, vaultAddress *string, expiresAfter *uint64) ([]byte, error) {
	var vault []byte
	if vaultAddress != nil {
		b, err := hexconv.DecodeHex(*vaultAddress)
		if err != nil {
			return nil, encodingErrorf("invalid vault address %q: %v", *vaultAddress, err)
		}
		if len(b) != addressLength {
			return nil, encodingErrorf("vault address must be %d bytes, got %d", addressLength, len(b))
		}
		vault = b
	}

	packed, err := Encode(action)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(packed)+8+1+addressLength+9)
	out = append(out, packed...)
	out = binary.BigEndian.AppendUint64(out, nonce)

	if vault == nil {
		out = append(out, vaultAbsent)
	} else {
		out = append(out, vaultPresent)
		out = append(out, vault...)
	}

	if expiresAfter != nil {
		out = append(out, expiresTag)
		out = binary.BigEndian.AppendUint64(out, *expiresAfter)
	}

	return out, nil
}

// Hash computes the action hash that L1 actions commit to through the
// phantom agent's connectionId.
func Hash(action Value, nonce uint64, vaultAddress *string, expiresAfter *uint64) (keccak.Digest, error) {
	pre, err := Preimage(action, nonce, vaultAddress, expiresAfter)
	if err != nil {
		return keccak.Digest{}, err
	}
	return keccak.Sum(pre), nil
}
