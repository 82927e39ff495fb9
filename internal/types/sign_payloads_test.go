package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/types"
)

func TestPostSignL1PayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"minimal", `{"action":{"type":"cancel","cancels":[]}}`, false},
		{"full", `{"action":{"type":"noop"},"nonce":1,"vaultAddress":"0x1111111111111111111111111111111111111111","expiresAfter":2,"mainnet":true}`, false},
		{"missing action", `{"nonce":1}`, true},
		{"null action", `{"action":null}`, true},
		{"action not an object", `{"action":[1,2]}`, true},
		{"negative nonce", `{"action":{"type":"noop"},"nonce":-1}`, true},
		{"short vault", `{"action":{"type":"noop"},"vaultAddress":"0x1234"}`, true},
		{"negative expiry", `{"action":{"type":"noop"},"expiresAfter":-5}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body types.PostSignL1Payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))

			err := body.Validate(strfmt.Default)
			if tt.wantErr {
				var composite *oerrors.CompositeError
				require.ErrorAs(t, err, &composite)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPostSignL1PayloadKeepsActionOrder(t *testing.T) {
	var body types.PostSignL1Payload
	require.NoError(t, json.Unmarshal([]byte(`{"action":{"type":"cancel","cancels":[{"a":0,"o":123}]}}`), &body))

	m, ok := body.Action.AsMap()
	require.True(t, ok)
	assert.Equal(t, []string{"type", "cancels"}, m.Keys())
}

func TestPostHashPayloadRequiresNonce(t *testing.T) {
	var body types.PostHashPayload
	require.NoError(t, json.Unmarshal([]byte(`{"action":{"type":"noop"}}`), &body))
	require.Error(t, body.Validate(strfmt.Default))

	body.Nonce = swag.Int64(5)
	require.NoError(t, body.Validate(strfmt.Default))
}

func TestPostSignUserPayloadValidate(t *testing.T) {
	var body types.PostSignUserPayload
	require.NoError(t, json.Unmarshal([]byte(`{"mainnet":false}`), &body))
	require.Error(t, body.Validate(strfmt.Default))

	require.NoError(t, json.Unmarshal([]byte(`{"action":{"type":"usdSend"},"primaryType":"HyperliquidTransaction:UsdSend"}`), &body))
	require.Error(t, body.Validate(strfmt.Default))

	body = types.PostSignUserPayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"action":{"type":"x"},"primaryType":"X","types":[{"name":"hyperliquidChain","type":"string"}]}`), &body))
	require.NoError(t, body.Validate(strfmt.Default))

	body.Types = append(body.Types, &types.EIP712Field{Name: swag.String("amount")})
	require.Error(t, body.Validate(strfmt.Default))
}

func TestSignatureValidate(t *testing.T) {
	scalar := "0x" + strings.Repeat("ab", 32)
	sig := &types.Signature{R: swag.String(scalar), S: swag.String(scalar), V: swag.Int64(27)}
	require.NoError(t, sig.Validate(strfmt.Default))

	sig.V = swag.Int64(1)
	require.Error(t, sig.Validate(strfmt.Default))

	sig.V = swag.Int64(28)
	sig.R = swag.String("0x01")
	require.Error(t, sig.Validate(strfmt.Default))
}

func TestPublicHTTPErrorValidate(t *testing.T) {
	e := &types.PublicHTTPError{
		Code:  swag.Int64(400),
		Title: swag.String("Bad Request"),
		Type:  types.PublicHTTPErrorTypeInvalidAction.Pointer(),
	}
	require.NoError(t, e.Validate(strfmt.Default))

	e.Type = types.NewPublicHTTPErrorType("nope")
	require.Error(t, e.Validate(strfmt.Default))
}

func TestPostSignOrderPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"minimal", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":1}]}`, ""},
		{"trigger", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":1,"trigger":{"triggerPx":2,"tpsl":"tp"}}],"grouping":"positionTpsl"}`, ""},
		{"missing orders", `{}`, "orders"},
		{"empty orders", `{"orders":[]}`, "orders"},
		{"unknown tif", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":1,"tif":"Fok"}]}`, "orders.0.tif"},
		{"zero size", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":0}]}`, "orders.0.size"},
		{"trigger without tpsl", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":1,"trigger":{"triggerPx":2}}]}`, "orders.0.trigger.tpsl"},
		{"builder without fee", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":1}],"builder":{"address":"0x1111111111111111111111111111111111111111"}}`, "builder.fee"},
		{"unknown grouping", `{"orders":[{"asset":0,"isBuy":true,"limitPx":1,"size":1}],"grouping":"oco"}`, "grouping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body types.PostSignOrderPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))

			err := body.Validate(strfmt.Default)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPostSignCancelPayloadValidate(t *testing.T) {
	var body types.PostSignCancelPayload
	require.NoError(t, json.Unmarshal([]byte(`{"cancels":[{"asset":0,"oid":1}]}`), &body))
	require.NoError(t, body.Validate(strfmt.Default))

	body = types.PostSignCancelPayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"cancels":[{"asset":0,"cloid":"0x2a"}]}`), &body))
	err := body.Validate(strfmt.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancels.0.cloid")
}

func TestPostSignUsdSendPayloadValidate(t *testing.T) {
	var body types.PostSignUsdSendPayload
	require.NoError(t, json.Unmarshal([]byte(`{"destination":"0x5e9ee1089755c3435139848e47e6635505d5a13a","amount":1}`), &body))
	require.NoError(t, body.Validate(strfmt.Default))

	body.Amount = swag.Float64(0)
	require.Error(t, body.Validate(strfmt.Default))
}
