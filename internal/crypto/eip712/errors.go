package eip712

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingField    = errors.New("missing struct field")
	ErrUnsupportedType = errors.New("unsupported field type")
	ErrInvalidValue    = errors.New("invalid field value")
	ErrUnknownType     = errors.New("unknown struct type")
)
