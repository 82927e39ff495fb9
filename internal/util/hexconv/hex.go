package hexconv

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// DecodeHex decodes a hex string with or without a 0x prefix.
// Odd-length input and non-hex characters are rejected.
func DecodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex string")
	}

	return b, nil
}

// EncodeHex encodes b as lowercase hex with a 0x prefix. An empty slice yields "0x".
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}
