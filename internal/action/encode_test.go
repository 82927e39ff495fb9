package action_test

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/action"
)

func cancelAction() *action.Map {
	return action.NewMap().
		Set("type", action.String("cancel")).
		Set("cancels", action.Array(
			action.FromMap(action.NewMap().
				Set("a", action.Int(0)).
				Set("o", action.Int(123))),
		))
}

func TestEncodeCancel(t *testing.T) {
	b, err := action.Encode(action.FromMap(cancelAction()))
	require.NoError(t, err)
	assert.Equal(t, "82a474797065a663616e63656ca763616e63656c739182a16100a16f7b", hex.EncodeToString(b))
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name  string
		value action.Value
		want  string
	}{
		{"null", action.Null(), "c0"},
		{"true", action.Bool(true), "c3"},
		{"false", action.Bool(false), "c2"},
		{"zero", action.Int(0), "00"},
		{"fixint max", action.Int(127), "7f"},
		{"uint8", action.Int(128), "cc80"},
		{"uint8 max", action.Uint(255), "ccff"},
		{"uint16", action.Int(256), "cd0100"},
		{"uint32", action.Int(65536), "ce00010000"},
		{"uint64", action.Uint(1 << 32), "cf0000000100000000"},
		{"uint64 max", action.Uint(math.MaxUint64), "cfffffffffffffffff"},
		{"negative fixint", action.Int(-1), "ff"},
		{"negative fixint min", action.Int(-32), "e0"},
		{"int8", action.Int(-33), "d0df"},
		{"int16", action.Int(-129), "d1ff7f"},
		{"int64 min", action.Int(math.MinInt64), "d38000000000000000"},
		{"float64", action.Float(1.5), "cb3ff8000000000000"},
		{"float64 integral", action.Float(1), "cb3ff0000000000000"},
		{"empty string", action.String(""), "a0"},
		{"fixstr", action.String("a"), "a161"},
		{"str8", action.String("0123456789012345678901234567890123"), "d922" + hex.EncodeToString([]byte("0123456789012345678901234567890123"))},
		{"empty array", action.Array(), "90"},
		{"empty map", action.FromMap(action.NewMap()), "80"},
		{"nil map", action.FromMap(nil), "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := action.Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(b))
		})
	}
}

func TestEncodeIntAndUintAgree(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 255, 256, 65535, 65536, math.MaxUint32, math.MaxUint32 + 1, math.MaxInt64} {
		a, err := action.Encode(action.Int(int64(n)))
		require.NoError(t, err)
		b, err := action.Encode(action.Uint(n))
		require.NoError(t, err)
		assert.Equal(t, a, b, "n=%d", n)
	}
}

func TestEncodeKeepsInsertionOrder(t *testing.T) {
	ab, err := action.Encode(action.FromMap(action.NewMap().
		Set("a", action.Int(1)).
		Set("b", action.Int(2))))
	require.NoError(t, err)

	ba, err := action.Encode(action.FromMap(action.NewMap().
		Set("b", action.Int(2)).
		Set("a", action.Int(1))))
	require.NoError(t, err)

	assert.Equal(t, "82a16101a16202", hex.EncodeToString(ab))
	assert.Equal(t, "82a16202a16101", hex.EncodeToString(ba))
}

func TestEncodeMap16Header(t *testing.T) {
	m := action.NewMap()
	for i := 0; i < 16; i++ {
		m.Set(string(rune('a'+i)), action.Null())
	}
	b, err := action.Encode(action.FromMap(m))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0x00, 0x10}, b[:3])
}
