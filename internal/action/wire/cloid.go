package wire

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/util/hexconv"
)

const cloidLength = 16

// Cloid is a client order id.
type Cloid [cloidLength]byte

// CloidFromInt returns the cloid whose low eight bytes hold n.
func CloidFromInt(n uint64) Cloid {
	var c Cloid
	binary.BigEndian.PutUint64(c[cloidLength-8:], n)
	return c
}

// ParseCloid parses 32 hex characters with an optional 0x prefix.
func ParseCloid(s string) (Cloid, error) {
	var c Cloid

	if len(strings.TrimPrefix(s, "0x")) != 2*cloidLength {
		return c, errors.Wrapf(ErrInvalidCloid, "%q must be %d hex characters", s, 2*cloidLength)
	}
	b, err := hexconv.DecodeHex(s)
	if err != nil {
		return c, errors.Wrapf(ErrInvalidCloid, "%q: %v", s, err)
	}

	copy(c[:], b)
	return c, nil
}

func (c Cloid) String() string {
	return "0x" + hex.EncodeToString(c[:])
}

func (c Cloid) value() action.Value {
	return action.String(c.String())
}
