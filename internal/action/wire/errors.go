package wire

import "github.com/pkg/errors"

var (
	ErrRounding     = errors.New("value cannot be represented without rounding")
	ErrInvalidCloid = errors.New("invalid cloid")
	ErrInvalidOrder = errors.New("invalid order")
)
