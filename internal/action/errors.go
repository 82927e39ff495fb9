package action

import (
	"github.com/pkg/errors"
)

// ErrEncoding is returned when an action or its framing cannot be encoded.
var ErrEncoding = errors.New("action encoding failed")

func encodingErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrEncoding, format, args...)
}
