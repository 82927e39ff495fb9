package action_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/action"
)

func TestMapSetExistingKeyKeepsPosition(t *testing.T) {
	m := action.NewMap().
		Set("a", action.Int(1)).
		Set("b", action.Int(2)).
		Set("a", action.Int(3))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	n, _ := v.AsInt()
	assert.Equal(t, int64(3), n)
}

func TestMapWithout(t *testing.T) {
	m := action.NewMap().
		Set("type", action.String("x")).
		Set("a", action.Int(1)).
		Set("b", action.Int(2))

	w := m.Without("type")
	assert.Equal(t, []string{"a", "b"}, w.Keys())
	assert.Equal(t, []string{"type", "a", "b"}, m.Keys())
}

func TestValueEqualIsOrderSensitive(t *testing.T) {
	a := action.FromMap(action.NewMap().Set("x", action.Int(1)).Set("y", action.Int(2)))
	b := action.FromMap(action.NewMap().Set("y", action.Int(2)).Set("x", action.Int(1)))
	c := action.FromMap(action.NewMap().Set("x", action.Int(1)).Set("y", action.Int(2)))

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(c))
}

func TestValueAccessors(t *testing.T) {
	_, ok := action.Int(-1).AsUint()
	assert.False(t, ok)

	u, ok := action.Int(5).AsUint()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), u)

	_, ok = action.Uint(math.MaxUint64).AsInt()
	assert.False(t, ok)

	_, ok = action.String("1").AsInt()
	assert.False(t, ok)

	assert.True(t, action.Value{}.IsNull())
	assert.Equal(t, action.KindNull, action.Value{}.Kind())
}

func TestFromAny(t *testing.T) {
	v, err := action.FromAny([]any{1, uint8(2), "x", true, nil, 1.5, action.NewMap().Set("k", action.String("v"))})
	require.NoError(t, err)

	arr, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 7)
	assert.Equal(t, action.KindInt, arr[0].Kind())
	assert.Equal(t, action.KindUint, arr[1].Kind())
	assert.Equal(t, action.KindString, arr[2].Kind())
	assert.Equal(t, action.KindBool, arr[3].Kind())
	assert.Equal(t, action.KindNull, arr[4].Kind())
	assert.Equal(t, action.KindFloat, arr[5].Kind())
	assert.Equal(t, action.KindMap, arr[6].Kind())

	_, err = action.FromAny(map[string]any{"a": 1})
	assert.ErrorIs(t, err, action.ErrEncoding)

	_, err = action.FromAny(struct{}{})
	assert.ErrorIs(t, err, action.ErrEncoding)
}

func TestJSONPreservesKeyOrder(t *testing.T) {
	const doc = `{"type":"order","orders":[{"a":1,"b":true,"p":"100.5","s":"0.01","r":false,"t":{"limit":{"tif":"Gtc"}}}],"grouping":"na"}`

	var v action.Value
	require.NoError(t, json.Unmarshal([]byte(doc), &v))

	m, ok := v.AsMap()
	require.True(t, ok)
	assert.Equal(t, []string{"type", "orders", "grouping"}, m.Keys())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
}

func TestJSONNumbers(t *testing.T) {
	var v action.Value
	require.NoError(t, json.Unmarshal([]byte(`[0, -5, 18446744073709551615, 1.25, 1e3, -0.5]`), &v))

	arr, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 6)

	assert.Equal(t, action.KindUint, arr[0].Kind())
	assert.Equal(t, action.KindInt, arr[1].Kind())
	assert.Equal(t, action.KindUint, arr[2].Kind())
	assert.Equal(t, action.KindFloat, arr[3].Kind())
	assert.Equal(t, action.KindFloat, arr[4].Kind())
	assert.Equal(t, action.KindFloat, arr[5].Kind())
}

func TestJSONHashMatchesBuiltAction(t *testing.T) {
	var v action.Value
	require.NoError(t, json.Unmarshal([]byte(`{"type":"cancel","cancels":[{"a":0,"o":123}]}`), &v))

	fromJSON, err := action.Hash(v, testNonce, nil, nil)
	require.NoError(t, err)
	built, err := action.Hash(action.FromMap(cancelAction()), testNonce, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, built, fromJSON)
}

func TestMarshalJSONRejectsNaN(t *testing.T) {
	_, err := json.Marshal(action.Float(math.NaN()))
	assert.Error(t, err)
}
