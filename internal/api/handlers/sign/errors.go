package sign

import (
	"errors"
	"net/http"

	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/action/wire"
	"github/chapool/hl-signer/internal/api/httperrors"
	"github/chapool/hl-signer/internal/crypto/eip712"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/wallet/keymanager"
)

// fromSigningError maps the error kinds of the signing stack to HTTP errors.
// Caller mistakes become 400s. Anything else is returned unchanged and ends
// up as a 500.
func fromSigningError(err error) error {
	if err == nil {
		return nil
	}

	var (
		errType types.PublicHTTPErrorType
		code    = http.StatusBadRequest
		title   string
	)

	switch {
	case errors.Is(err, action.ErrEncoding):
		errType, title = types.PublicHTTPErrorTypeInvalidAction, "The action cannot be encoded."
	case errors.Is(err, wire.ErrRounding),
		errors.Is(err, wire.ErrInvalidOrder),
		errors.Is(err, wire.ErrInvalidCloid):
		errType, title = types.PublicHTTPErrorTypeInvalidAction, "The action cannot be built from the request."
	case errors.Is(err, signing.ErrUnknownActionType):
		errType, title = types.PublicHTTPErrorTypeUnknownActionType, "The action type is not a known user-signed action."
	case errors.Is(err, signing.ErrChainMismatch):
		errType, title = types.PublicHTTPErrorTypeChainMismatch, "signatureChainId does not match the signing domain."
	case errors.Is(err, eip712.ErrMissingField),
		errors.Is(err, eip712.ErrInvalidValue),
		errors.Is(err, eip712.ErrUnsupportedType),
		errors.Is(err, eip712.ErrUnknownType):
		errType, title = types.PublicHTTPErrorTypeInvalidTypedData, "The action does not match its typed data definition."
	case errors.Is(err, keymanager.ErrNotInitialized):
		e := *httperrors.ErrKeyNotLoaded
		e.Internal = err
		return &e
	default:
		return err
	}

	e := httperrors.NewHTTPErrorWithDetail(code, errType, title, err.Error())
	e.Internal = err
	return e
}
