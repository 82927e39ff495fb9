package sign

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/util"
)

// nonceOrNext returns the requested nonce or draws one from the server's
// nonce source. Payload validation guarantees requested nonces are not negative.
func nonceOrNext(s *api.Server, requested *int64) uint64 {
	if requested != nil {
		return uint64(*requested)
	}
	return s.Nonces.Next()
}

func toUint64Ptr(v *int64) *uint64 {
	if v == nil {
		return nil
	}
	u := uint64(*v)
	return &u
}

// signBuiltL1 signs an action built by the daemon and responds with the
// action next to its signature, so callers can submit it unchanged.
func signBuiltL1(c echo.Context, s *api.Server, act action.Value, req *signing.L1Request, requestedNonce *int64) error {
	nonce := nonceOrNext(s, requestedNonce)
	req.Action = act
	req.Nonce = nonce

	res, err := s.Signing.SignL1Action(c.Request().Context(), req)
	if err != nil {
		return fromSigningError(err)
	}

	out := signing.NewSignResponse(s.Signing.Address(), res, &nonce)
	out.Action, _ = act.AsMap()

	return util.ValidateAndReturn(c, http.StatusOK, out)
}
