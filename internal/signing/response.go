package signing

import (
	"github.com/go-openapi/swag"
	"github/chapool/hl-signer/internal/types"
)

// NewSignResponse renders a Result as returned by the daemon and the CLI.
// nonce is omitted from the response when nil.
func NewSignResponse(signer string, res *Result, nonce *uint64) *types.SignResponse {
	out := &types.SignResponse{
		Signer: swag.String(signer),
		Digest: swag.String(res.Digest.Hex()),
		Signature: &types.Signature{
			R: swag.String(res.Signature.RHex()),
			S: swag.String(res.Signature.SHex()),
			V: swag.Int64(int64(res.Signature.V)),
		},
		Action: res.Action,
	}

	if res.ActionHash != nil {
		out.ActionHash = res.ActionHash.Hex()
	}
	if nonce != nil {
		out.Nonce = swag.Int64(int64(*nonce))
	}

	return out
}
