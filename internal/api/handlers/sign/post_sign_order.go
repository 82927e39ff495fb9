package sign

import (
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostSignOrderRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/sign/order", postSignOrderHandler(s))
}

func postSignOrderHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostSignOrderPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		act, err := orderActionFromPayload(&body)
		if err != nil {
			util.LogFromContext(c.Request().Context()).Debug().Err(err).Msg("Failed to build order action")
			return fromSigningError(err)
		}

		return signBuiltL1(c, s, act, &signing.L1Request{
			VaultAddress: body.VaultAddress,
			ExpiresAfter: toUint64Ptr(body.ExpiresAfter),
			Mainnet:      util.BoolOr(body.Mainnet, s.Config.Signer.Mainnet),
		}, body.Nonce)
	}
}
