package httperrors

import (
	"net/http"

	"github/chapool/hl-signer/internal/types"
)

var (
	ErrKeyNotLoaded = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeKeyNotLoaded, "No signing key is loaded.")
)
