package sign

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostSignL1Route(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/sign/l1", postSignL1Handler(s))
}

func postSignL1Handler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSignL1Payload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		nonce := nonceOrNext(s, body.Nonce)
		res, err := s.Signing.SignL1Action(ctx, &signing.L1Request{
			Action:       body.Action,
			Nonce:        nonce,
			VaultAddress: body.VaultAddress,
			ExpiresAfter: toUint64Ptr(body.ExpiresAfter),
			Mainnet:      util.BoolOr(body.Mainnet, s.Config.Signer.Mainnet),
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to sign L1 action")
			return fromSigningError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, signing.NewSignResponse(s.Signing.Address(), res, &nonce))
	}
}
