package signing_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/crypto/eip712"
	"github/chapool/hl-signer/internal/metrics"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/wallet/keymanager"
	"github/chapool/hl-signer/internal/wallet/signer"
)

const (
	hardhatKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddress = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	testNonce      = uint64(1700000000000)
)

func newTestService(t *testing.T) (signing.Service, *metrics.Service) {
	t.Helper()

	keys, err := keymanager.ImportPrivateKey(hardhatKey)
	require.NoError(t, err)
	t.Cleanup(keys.Clear)

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	svc, err := signing.NewService(keys, m)
	require.NoError(t, err)

	return svc, m
}

func cancelAction() action.Value {
	return action.FromMap(action.NewMap().
		Set("type", action.String("cancel")).
		Set("cancels", action.Array(
			action.FromMap(action.NewMap().
				Set("a", action.Int(0)).
				Set("o", action.Int(123))),
		)))
}

func recoveredAddress(t *testing.T, res *signing.Result) string {
	t.Helper()
	addr, err := signer.RecoverAddress(res.Digest, res.Signature)
	require.NoError(t, err)
	return strings.ToLower(addr.Hex())
}

func TestSignL1ActionGolden(t *testing.T) {
	svc, m := newTestService(t)
	ctx := t.Context()

	tests := []struct {
		name    string
		mainnet bool
		digest  string
		r       string
		s       string
		v       byte
	}{
		{
			name:    "mainnet",
			mainnet: true,
			digest:  "0xf90176e0e223f98d123c7d06bfbbd3ead7a3f3e6b5c429af4136e71daba3cb3e",
			r:       "0x71be3452426d90296d3103cab6ef14a81374a380c47e9df7c36c9a6b300d0b6a",
			s:       "0x65213bd6edd3ac6d6fa68e50e8110ee19f8ea48557da551a9a18affb4e282395",
			v:       28,
		},
		{
			name:    "testnet",
			mainnet: false,
			digest:  "0xd5e69583ce75dad9480b24894a2f2fb951398623e8f51612ab67899bd8efc302",
			r:       "0x656702c5b0dece218e806da9a1a0d9e06dda2d4fb1769ff505cdf2075bc5ea7f",
			s:       "0x1fc1a9411c2513179a6ba7426e57ea9e490160a772c2b051cd568623f9ff2df8",
			v:       27,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.SignL1Action(ctx, &signing.L1Request{
				Action:  cancelAction(),
				Nonce:   testNonce,
				Mainnet: tt.mainnet,
			})
			require.NoError(t, err)

			require.NotNil(t, res.ActionHash)
			assert.Equal(t, "0xe98dd18456c80d6b913946acb297d411a59a675716721df2abb7a8b85f0044e9", res.ActionHash.Hex())
			assert.Equal(t, tt.digest, res.Digest.Hex())
			assert.Equal(t, tt.r, res.Signature.RHex())
			assert.Equal(t, tt.s, res.Signature.SHex())
			assert.Equal(t, tt.v, res.Signature.V)
			assert.Equal(t, hardhatAddress, recoveredAddress(t, res))
		})
	}

	assert.InDelta(t, 1, testutil.ToFloat64(m.SignaturesTotal.WithLabelValues(signing.KindL1, "mainnet", metrics.ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SignaturesTotal.WithLabelValues(signing.KindL1, "testnet", metrics.ResultSuccess)), 0)
}

func TestSignL1ActionWithVaultAndExpiry(t *testing.T) {
	svc, _ := newTestService(t)

	vault := "0x" + strings.Repeat("11", 20)
	expires := uint64(1700000060000)
	res, err := svc.SignL1Action(t.Context(), &signing.L1Request{
		Action:       cancelAction(),
		Nonce:        testNonce,
		VaultAddress: &vault,
		ExpiresAfter: &expires,
		Mainnet:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "0x76b8716525bb94561572b432c9f468161d2d225f1fb6f2875031c11dddc0d9d8", res.ActionHash.Hex())
	assert.Equal(t, hardhatAddress, recoveredAddress(t, res))
}

func TestSignL1ActionRejectsBadVault(t *testing.T) {
	svc, m := newTestService(t)

	vault := "0x1234"
	_, err := svc.SignL1Action(t.Context(), &signing.L1Request{
		Action:       cancelAction(),
		Nonce:        testNonce,
		VaultAddress: &vault,
	})
	assert.ErrorIs(t, err, action.ErrEncoding)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SignaturesTotal.WithLabelValues(signing.KindL1, "testnet", metrics.ResultError)), 0)
}

func TestHashAction(t *testing.T) {
	svc, _ := newTestService(t)

	h, err := svc.HashAction(t.Context(), &signing.HashRequest{Action: cancelAction(), Nonce: testNonce})
	require.NoError(t, err)
	assert.Equal(t, "0xe98dd18456c80d6b913946acb297d411a59a675716721df2abb7a8b85f0044e9", h.Hex())
}

func usdSendAction() *action.Map {
	return action.NewMap().
		Set("type", action.String("usdSend")).
		Set("destination", action.String("0x5e9ee1089755c3435139848e47e6635505d5a13a")).
		Set("amount", action.String("1")).
		Set("time", action.Uint(1687816341423))
}

func TestSignUserSignedActionGolden(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.SignUserSignedAction(t.Context(), &signing.UserSignedRequest{
		Action:  usdSendAction(),
		Mainnet: false,
	})
	require.NoError(t, err)

	assert.Equal(t, "0xcacf7585cc49ca60c6c5fb3001e226c0ca03c46252c893eea574c78907b7cebe", res.Digest.Hex())
	assert.Equal(t, "0xca4cf89fc794e196c5ea026092d8183b68684c03f19e5a00eae3c1ba4096f2c5", res.Signature.RHex())
	assert.Equal(t, "0x345488a410e50fafe7dc7bbc129e9242e259a6d8eb4d5c4b177f16d1d208e370", res.Signature.SHex())
	assert.Equal(t, byte(28), res.Signature.V)
	assert.Nil(t, res.ActionHash)

	assert.Equal(t, []string{"type", "destination", "amount", "time", "signatureChainId", "hyperliquidChain"}, res.Action.Keys())
	chain, _ := res.Action.Get("hyperliquidChain")
	s, _ := chain.AsString()
	assert.Equal(t, "Testnet", s)
}

func TestSignUserSignedActionExplicitType(t *testing.T) {
	svc, _ := newTestService(t)

	usdSend, ok := signing.LookupUserSignedType("usdSend")
	require.True(t, ok)

	res, err := svc.SignUserSignedAction(t.Context(), &signing.UserSignedRequest{
		Action:      usdSendAction().Without("type"),
		PrimaryType: usdSend.PrimaryType,
		Fields:      usdSend.Fields,
	})
	require.NoError(t, err)
	assert.Equal(t, "0xcacf7585cc49ca60c6c5fb3001e226c0ca03c46252c893eea574c78907b7cebe", res.Digest.Hex())
}

func TestSignUserSignedActionNetworks(t *testing.T) {
	svc, _ := newTestService(t)

	mainnet, err := svc.SignUserSignedAction(t.Context(), &signing.UserSignedRequest{Action: usdSendAction(), Mainnet: true})
	require.NoError(t, err)
	testnet, err := svc.SignUserSignedAction(t.Context(), &signing.UserSignedRequest{Action: usdSendAction(), Mainnet: false})
	require.NoError(t, err)

	assert.NotEqual(t, mainnet.Digest, testnet.Digest)
	assert.Equal(t, hardhatAddress, recoveredAddress(t, mainnet))
	assert.Equal(t, hardhatAddress, recoveredAddress(t, testnet))
}

func TestSignUserSignedActionDoesNotMutateInput(t *testing.T) {
	svc, _ := newTestService(t)

	in := usdSendAction()
	_, err := svc.SignUserSignedAction(t.Context(), &signing.UserSignedRequest{Action: in})
	require.NoError(t, err)
	assert.Equal(t, []string{"type", "destination", "amount", "time"}, in.Keys())
}

func TestSignUserSignedActionErrors(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  *signing.UserSignedRequest
		want error
	}{
		{"nil action", &signing.UserSignedRequest{}, action.ErrEncoding},
		{"no type", &signing.UserSignedRequest{Action: usdSendAction().Without("type")}, signing.ErrUnknownActionType},
		{
			"unknown type",
			&signing.UserSignedRequest{Action: action.NewMap().Set("type", action.String("order"))},
			signing.ErrUnknownActionType,
		},
		{"missing field", &signing.UserSignedRequest{Action: usdSendAction().Without("amount")}, eip712.ErrMissingField},
		{
			"wrong chain id",
			&signing.UserSignedRequest{Action: usdSendAction().Set("signatureChainId", action.String("0xa4b1"))},
			signing.ErrChainMismatch,
		},
		{
			"primary type without fields",
			&signing.UserSignedRequest{Action: usdSendAction(), PrimaryType: "HyperliquidTransaction:UsdSend"},
			eip712.ErrUnknownType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.SignUserSignedAction(t.Context(), tt.req)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignUserSignedActionAcceptsMatchingChainID(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.SignUserSignedAction(t.Context(), &signing.UserSignedRequest{
		Action: usdSendAction().Set("signatureChainId", action.String("0x66eee")),
	})
	require.NoError(t, err)
	assert.Equal(t, "0xcacf7585cc49ca60c6c5fb3001e226c0ca03c46252c893eea574c78907b7cebe", res.Digest.Hex())
}

func TestSignMultiSigAction(t *testing.T) {
	svc, _ := newTestService(t)

	inner := action.NewMap().
		Set("type", action.String("multiSig")).
		Set("signatureChainId", action.String("0x66eee")).
		Set("signatures", action.Array()).
		Set("payload", action.FromMap(action.NewMap().
			Set("multiSigUser", action.String("0x"+strings.Repeat("22", 20))).
			Set("outerSigner", action.String(hardhatAddress)).
			Set("action", cancelAction())))

	res, err := svc.SignMultiSigAction(t.Context(), &signing.MultiSigRequest{
		Action:  inner,
		Nonce:   testNonce,
		Mainnet: true,
	})
	require.NoError(t, err)

	wantHash, err := action.Hash(action.FromMap(inner.Without("type")), testNonce, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, res.ActionHash)
	assert.Equal(t, wantHash, *res.ActionHash)

	wantDigest, err := eip712.Digest(eip712.UserSignedDomain, signing.MultiSigEnvelopeType.Types(), signing.MultiSigEnvelopeType.PrimaryType, map[string]any{
		"hyperliquidChain":   "Mainnet",
		"multiSigActionHash": wantHash,
		"nonce":              testNonce,
	})
	require.NoError(t, err)
	assert.Equal(t, wantDigest, res.Digest)
	assert.Equal(t, hardhatAddress, recoveredAddress(t, res))

	_, err = svc.SignMultiSigAction(t.Context(), &signing.MultiSigRequest{})
	assert.ErrorIs(t, err, action.ErrEncoding)
}

func TestNewServiceRequiresKey(t *testing.T) {
	_, err := signing.NewService(nil, nil)
	assert.ErrorIs(t, err, keymanager.ErrNotInitialized)

	keys, err := keymanager.ImportPrivateKey(hardhatKey)
	require.NoError(t, err)
	keys.Clear()

	_, err = signing.NewService(keys, nil)
	assert.ErrorIs(t, err, keymanager.ErrNotInitialized)
}

func TestAddress(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, hardhatAddress, svc.Address())
}
