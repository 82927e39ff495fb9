package signing

import (
	"github/chapool/hl-signer/internal/crypto/eip712"
)

// UserSignedType describes the EIP-712 struct of a user-signed action.
type UserSignedType struct {
	ActionType  string
	PrimaryType string
	Fields      []eip712.Field
}

// Types returns the type set for use with eip712.Digest.
func (u UserSignedType) Types() eip712.Types {
	return eip712.Types{u.PrimaryType: u.Fields}
}

const (
	fieldHyperliquidChain = "hyperliquidChain"
	fieldSignatureChainID = "signatureChainId"
	fieldType             = "type"
)

var chainField = eip712.Field{Name: fieldHyperliquidChain, Type: "string"}

var userSignedTypes = []UserSignedType{
	{
		ActionType:  "usdSend",
		PrimaryType: "HyperliquidTransaction:UsdSend",
		Fields: []eip712.Field{
			chainField,
			{Name: "destination", Type: "string"},
			{Name: "amount", Type: "string"},
			{Name: "time", Type: "uint64"},
		},
	},
	{
		ActionType:  "spotSend",
		PrimaryType: "HyperliquidTransaction:SpotSend",
		Fields: []eip712.Field{
			chainField,
			{Name: "destination", Type: "string"},
			{Name: "token", Type: "string"},
			{Name: "amount", Type: "string"},
			{Name: "time", Type: "uint64"},
		},
	},
	{
		ActionType:  "withdraw3",
		PrimaryType: "HyperliquidTransaction:Withdraw",
		Fields: []eip712.Field{
			chainField,
			{Name: "destination", Type: "string"},
			{Name: "amount", Type: "string"},
			{Name: "time", Type: "uint64"},
		},
	},
	{
		ActionType:  "usdClassTransfer",
		PrimaryType: "HyperliquidTransaction:UsdClassTransfer",
		Fields: []eip712.Field{
			chainField,
			{Name: "amount", Type: "string"},
			{Name: "toPerp", Type: "bool"},
			{Name: "nonce", Type: "uint64"},
		},
	},
	{
		ActionType:  "sendAsset",
		PrimaryType: "HyperliquidTransaction:SendAsset",
		Fields: []eip712.Field{
			chainField,
			{Name: "destination", Type: "string"},
			{Name: "sourceDex", Type: "string"},
			{Name: "destinationDex", Type: "string"},
			{Name: "token", Type: "string"},
			{Name: "amount", Type: "string"},
			{Name: "fromSubAccount", Type: "string"},
			{Name: "nonce", Type: "uint64"},
		},
	},
	{
		ActionType:  "tokenDelegate",
		PrimaryType: "HyperliquidTransaction:TokenDelegate",
		Fields: []eip712.Field{
			chainField,
			{Name: "validator", Type: "address"},
			{Name: "wei", Type: "uint64"},
			{Name: "isUndelegate", Type: "bool"},
			{Name: "nonce", Type: "uint64"},
		},
	},
	{
		ActionType:  "approveAgent",
		PrimaryType: "HyperliquidTransaction:ApproveAgent",
		Fields: []eip712.Field{
			chainField,
			{Name: "agentAddress", Type: "address"},
			{Name: "agentName", Type: "string"},
			{Name: "nonce", Type: "uint64"},
		},
	},
	{
		ActionType:  "approveBuilderFee",
		PrimaryType: "HyperliquidTransaction:ApproveBuilderFee",
		Fields: []eip712.Field{
			chainField,
			{Name: "maxFeeRate", Type: "string"},
			{Name: "builder", Type: "address"},
			{Name: "nonce", Type: "uint64"},
		},
	},
	{
		ActionType:  "userDexAbstraction",
		PrimaryType: "HyperliquidTransaction:UserDexAbstraction",
		Fields: []eip712.Field{
			chainField,
			{Name: "user", Type: "address"},
			{Name: "enabled", Type: "bool"},
			{Name: "nonce", Type: "uint64"},
		},
	},
	{
		ActionType:  "convertToMultiSigUser",
		PrimaryType: "HyperliquidTransaction:ConvertToMultiSigUser",
		Fields: []eip712.Field{
			chainField,
			{Name: "signers", Type: "string"},
			{Name: "nonce", Type: "uint64"},
		},
	},
}

// MultiSigEnvelopeType wraps the hash of a multi-sig inner action.
var MultiSigEnvelopeType = UserSignedType{
	ActionType:  "multiSig",
	PrimaryType: "HyperliquidTransaction:SendMultiSig",
	Fields: []eip712.Field{
		chainField,
		{Name: "multiSigActionHash", Type: "bytes32"},
		{Name: "nonce", Type: "uint64"},
	},
}

var userSignedTypesByAction = func() map[string]UserSignedType {
	m := make(map[string]UserSignedType, len(userSignedTypes))
	for _, t := range userSignedTypes {
		m[t.ActionType] = t
	}
	return m
}()

// LookupUserSignedType returns the struct used for a user-signed action type
// such as "usdSend".
func LookupUserSignedType(actionType string) (UserSignedType, bool) {
	t, ok := userSignedTypesByAction[actionType]
	return t, ok
}

// UserSignedTypes lists every known user-signed action type.
func UserSignedTypes() []UserSignedType {
	out := make([]UserSignedType, len(userSignedTypes))
	copy(out, userSignedTypes)
	return out
}
