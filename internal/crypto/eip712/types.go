// Package eip712 implements the subset of EIP-712 structured-data hashing used to
// sign exchange actions: flat or nested structs whose fields are string, bytes,
// bytes32, address, bool, uint64 or uint256 (values up to 64 bits).
package eip712

import (
	"github.com/ethereum/go-ethereum/common"
	"github/chapool/hl-signer/internal/crypto/keccak"
)

// Field is one member of a struct type. Field order is part of the type.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Types maps struct names to their ordered fields.
type Types map[string][]Field

// Domain is the EIP712Domain separator input.
type Domain struct {
	Name              string
	Version           string
	ChainID           uint64
	VerifyingContract common.Address
}

const domainTypeName = "EIP712Domain"

var domainTypes = Types{
	domainTypeName: {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

func (d Domain) message() map[string]any {
	return map[string]any{
		"name":              d.Name,
		"version":           d.Version,
		"chainId":           d.ChainID,
		"verifyingContract": d.VerifyingContract,
	}
}

// Separator returns hashStruct(EIP712Domain, d).
func (d Domain) Separator() keccak.Digest {
	h, err := HashStruct(domainTypes, domainTypeName, d.message())
	if err != nil {
		// every domain field is statically typed and always present
		panic(err)
	}
	return h
}

const (
	AgentPrimaryType = "Agent"

	UserSignedChainID    uint64 = 0x66eee
	UserSignedChainIDHex        = "0x66eee"
)

var (
	// L1Domain signs phantom agents wrapping L1 action hashes.
	L1Domain = Domain{
		Name:    "Exchange",
		Version: "1",
		ChainID: 1337,
	}

	// UserSignedDomain signs transfers and account administration actions.
	UserSignedDomain = Domain{
		Name:    "HyperliquidSignTransaction",
		Version: "1",
		ChainID: UserSignedChainID,
	}

	AgentTypes = Types{
		AgentPrimaryType: {
			{Name: "source", Type: "string"},
			{Name: "connectionId", Type: "bytes32"},
		},
	}
)
