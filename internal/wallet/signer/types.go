package signer

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/util/hexconv"
)

const (
	scalarLength    = 32
	signatureLength = 2*scalarLength + 1

	// RecoveryIDOffset is added to the internal recovery id (0 or 1) to form V.
	RecoveryIDOffset = 27
)

// Signature is a canonical (low-s) secp256k1 signature with its recovery id.
type Signature struct {
	R [scalarLength]byte
	S [scalarLength]byte
	// V is 27 or 28.
	V byte
}

// RHex returns R as 0x-prefixed, zero-padded 64-char hex.
func (s *Signature) RHex() string { return hexconv.EncodeHex(s.R[:]) }

// SHex returns S as 0x-prefixed, zero-padded 64-char hex.
func (s *Signature) SHex() string { return hexconv.EncodeHex(s.S[:]) }

// RecoveryID returns V without the 27 offset.
func (s *Signature) RecoveryID() byte { return s.V - RecoveryIDOffset }

// Bytes returns r ‖ s ‖ v (65 bytes, v in {27, 28}).
func (s *Signature) Bytes() []byte {
	out := make([]byte, 0, signatureLength)
	out = append(out, s.R[:]...)
	out = append(out, s.S[:]...)
	return append(out, s.V)
}

// SignatureFromBytes parses r ‖ s ‖ v. v may be 0/1 or 27/28.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != signatureLength {
		return nil, errors.Wrapf(ErrInvalidSignature, "expected %d bytes, got %d", signatureLength, len(b))
	}

	sig := &Signature{V: b[2*scalarLength]}
	copy(sig.R[:], b[:scalarLength])
	copy(sig.S[:], b[scalarLength:2*scalarLength])
	if sig.V < RecoveryIDOffset {
		sig.V += RecoveryIDOffset
	}
	if sig.V != RecoveryIDOffset && sig.V != RecoveryIDOffset+1 {
		return nil, errors.Wrapf(ErrInvalidSignature, "invalid v %d", b[2*scalarLength])
	}

	return sig, nil
}

type signatureJSON struct {
	R string `json:"r"`
	S string `json:"s"`
	V byte   `json:"v"`
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(signatureJSON{R: s.RHex(), S: s.SHex(), V: s.V})
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var raw signatureJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to parse signature")
	}

	r, err := decodeScalar(raw.R)
	if err != nil {
		return errors.Wrap(err, "invalid r")
	}
	sv, err := decodeScalar(raw.S)
	if err != nil {
		return errors.Wrap(err, "invalid s")
	}
	if raw.V != RecoveryIDOffset && raw.V != RecoveryIDOffset+1 {
		return errors.Wrapf(ErrInvalidSignature, "invalid v %d", raw.V)
	}

	s.R, s.S, s.V = r, sv, raw.V
	return nil
}

// decodeScalar accepts hex with or without leading zeros.
func decodeScalar(h string) ([scalarLength]byte, error) {
	var out [scalarLength]byte

	b, err := hexconv.DecodeHex(h)
	if err != nil {
		return out, errors.Wrapf(ErrInvalidSignature, "%v", err)
	}
	if len(b) > scalarLength {
		return out, errors.Wrapf(ErrInvalidSignature, "scalar has %d bytes", len(b))
	}

	copy(out[scalarLength-len(b):], b)
	return out, nil
}
