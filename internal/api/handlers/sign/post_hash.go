package sign

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostHashRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/hash", postHashHandler(s))
}

// postHashHandler computes the action hash without signing.
func postHashHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostHashPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		h, err := s.Signing.HashAction(ctx, &signing.HashRequest{
			Action:       body.Action,
			Nonce:        uint64(*body.Nonce),
			VaultAddress: body.VaultAddress,
			ExpiresAfter: toUint64Ptr(body.ExpiresAfter),
		})
		if err != nil {
			return fromSigningError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.HashResponse{ActionHash: swag.String(h.Hex())})
	}
}
