package signer

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/crypto/keccak"
)

// recoverPoint reconstructs Q = r⁻¹(s·R − e·G) where R has x = r and the given y parity.
func recoverPoint(r, s, e *secp256k1.ModNScalar, oddY bool) (*secp256k1.PublicKey, bool) {
	var fx, fy secp256k1.FieldVal
	rBytes := r.Bytes()
	fx.SetBytes(&rBytes)
	if !secp256k1.DecompressY(&fx, oddY, &fy) {
		return nil, false
	}
	fy.Normalize()

	var one secp256k1.FieldVal
	one.SetInt(1)
	rPoint := secp256k1.MakeJacobianPoint(&fx, &fy, &one)

	var rInv, u1, u2 secp256k1.ModNScalar
	rInv.InverseValNonConst(r)
	u1.Mul2(e, &rInv).Negate()
	u2.Mul2(s, &rInv)

	var eG, sR, q secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&u1, &eG)
	secp256k1.ScalarMultNonConst(&u2, &rPoint, &sR)
	secp256k1.AddNonConst(&eG, &sR, &q)

	if (q.X.IsZero() && q.Y.IsZero()) || q.Z.IsZero() {
		return nil, false
	}

	q.ToAffine()
	return secp256k1.NewPublicKey(&q.X, &q.Y), true
}

// RecoverPublicKey returns the public key that produced sig over digest.
func RecoverPublicKey(digest keccak.Digest, sig *Signature) (*secp256k1.PublicKey, error) {
	if sig == nil {
		return nil, errors.Wrap(ErrInvalidSignature, "nil signature")
	}
	if sig.V != RecoveryIDOffset && sig.V != RecoveryIDOffset+1 {
		return nil, errors.Wrapf(ErrInvalidSignature, "invalid v %d", sig.V)
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetBytes(&sig.R); overflow != 0 || r.IsZero() {
		return nil, errors.Wrap(ErrInvalidSignature, "r out of range")
	}
	if overflow := s.SetBytes(&sig.S); overflow != 0 || s.IsZero() {
		return nil, errors.Wrap(ErrInvalidSignature, "s out of range")
	}

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest[:])

	pub, ok := recoverPoint(&r, &s, &e, sig.RecoveryID() == 1)
	if !ok {
		return nil, errors.Wrap(ErrSignatureRecovery, "r is not the x coordinate of a curve point")
	}
	return pub, nil
}

// RecoverAddress returns the address of the signer of digest.
func RecoverAddress(digest keccak.Digest, sig *Signature) (common.Address, error) {
	pub, err := RecoverPublicKey(digest, sig)
	if err != nil {
		return common.Address{}, err
	}
	return Address(pub), nil
}

// Address is the low 20 bytes of keccak256 over the uncompressed public key
// without its 0x04 prefix.
func Address(pub *secp256k1.PublicKey) common.Address {
	uncompressed := pub.SerializeUncompressed()
	h := keccak.Sum(uncompressed[1:])
	return common.BytesToAddress(h[keccak.Size-common.AddressLength:])
}
