package sign

import (
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostSignCancelRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/sign/cancel", postSignCancelHandler(s))
}

func postSignCancelHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostSignCancelPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		act, err := cancelActionFromPayload(&body)
		if err != nil {
			return fromSigningError(err)
		}

		return signBuiltL1(c, s, act, &signing.L1Request{
			VaultAddress: body.VaultAddress,
			ExpiresAfter: toUint64Ptr(body.ExpiresAfter),
			Mainnet:      util.BoolOr(body.Mainnet, s.Config.Signer.Mainnet),
		}, body.Nonce)
	}
}
