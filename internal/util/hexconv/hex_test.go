package hexconv_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/util/hexconv"
)

func TestHexRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01},
		{0xde, 0xad, 0xbe, 0xef},
	}
	for i := 0; i < 32; i++ {
		b := make([]byte, i*3)
		_, err := rand.Read(b)
		require.NoError(t, err)
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		enc := hexconv.EncodeHex(in)
		dec, err := hexconv.DecodeHex(enc)
		require.NoError(t, err)
		assert.Equal(t, len(in), len(dec))
		if len(in) > 0 {
			assert.Equal(t, in, dec)
		}
	}
}

func TestEncodeHexEmpty(t *testing.T) {
	assert.Equal(t, "0x", hexconv.EncodeHex(nil))
	assert.Equal(t, "0x", hexconv.EncodeHex([]byte{}))
}

func TestDecodeHex(t *testing.T) {
	b, err := hexconv.DecodeHex("0xAbCd")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b)

	b, err = hexconv.DecodeHex("abcd")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b)

	_, err = hexconv.DecodeHex("0xabc")
	assert.Error(t, err)

	_, err = hexconv.DecodeHex("0xzz")
	assert.Error(t, err)
}

func TestParseUint64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"010", 10},
		{"0x010", 0x10},
		{"1687816341423", 1687816341423},
		{"0x66eee", 0x66eee},
		{"0X66EEE", 0x66eee},
		{"18446744073709551615", 18446744073709551615},
	}
	for _, tt := range tests {
		got, err := hexconv.ParseUint64(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "-1", "0xzz", "18446744073709551616", "1.5", "0x", "0b101", "0o17", "1_000", "0x_1f"} {
		_, err := hexconv.ParseUint64(bad)
		assert.Error(t, err, bad)
	}
}
