package signing

import (
	"context"

	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/crypto/eip712"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/wallet/signer"
)

// Service signs exchange actions with a single held key
type Service interface {
	// Address returns the signing address
	Address() string

	// HashAction computes the action hash without signing
	HashAction(ctx context.Context, req *HashRequest) (keccak.Digest, error)

	// SignL1Action signs an order-book action through a phantom agent
	SignL1Action(ctx context.Context, req *L1Request) (*Result, error)

	// SignUserSignedAction signs a transfer or account action over the user-signed domain
	SignUserSignedAction(ctx context.Context, req *UserSignedRequest) (*Result, error)

	// SignMultiSigAction signs the SendMultiSig envelope of an inner action
	SignMultiSigAction(ctx context.Context, req *MultiSigRequest) (*Result, error)
}

// HashRequest carries the inputs of the action hash.
type HashRequest struct {
	Action       action.Value
	Nonce        uint64
	VaultAddress *string
	ExpiresAfter *uint64
}

// L1Request represents a request to sign an L1 action
type L1Request struct {
	Action       action.Value
	Nonce        uint64  // Unique, increasing per key; millisecond timestamps are customary
	VaultAddress *string // Optional 20-byte vault or sub-account address
	ExpiresAfter *uint64 // Optional expiry in milliseconds
	Mainnet      bool
}

// UserSignedRequest represents a request to sign a user-signed action.
// When PrimaryType is empty the type is looked up from the action's "type".
type UserSignedRequest struct {
	Action      *action.Map
	PrimaryType string
	Fields      []eip712.Field
	Mainnet     bool
}

// MultiSigRequest represents a request to sign a multi-sig envelope
type MultiSigRequest struct {
	Action       *action.Map // Inner action including its "type"
	Nonce        uint64
	VaultAddress *string
	ExpiresAfter *uint64
	Mainnet      bool
}

// Result is a signature together with the values it commits to.
type Result struct {
	Signature *signer.Signature
	Digest    keccak.Digest

	// ActionHash is set for L1 and multi-sig requests.
	ActionHash *keccak.Digest

	// Action is the user-signed action as signed, including injected chain fields.
	Action *action.Map
}

// Network names the chain selected by a mainnet flag.
func Network(mainnet bool) string {
	if mainnet {
		return "mainnet"
	}
	return "testnet"
}
