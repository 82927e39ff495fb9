package hexconv

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseUint64 parses a decimal or 0x-prefixed hexadecimal unsigned integer.
// Leading zeros are decimal, never octal.
func ParseUint64(s string) (uint64, error) {
	base, digits := 10, s
	if rest, ok := cutHexPrefix(s); ok {
		base, digits = 16, rest
	}

	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}

	return n, nil
}

func cutHexPrefix(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest, true
	}
	return strings.CutPrefix(s, "0X")
}
