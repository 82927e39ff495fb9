package sign

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/action/wire"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostSignUsdSendRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/sign/usd-send", postSignUsdSendHandler(s))
}

// postSignUsdSendHandler builds and signs a usdSend. The response carries the
// action with its chain fields, ready to be submitted.
func postSignUsdSendHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostSignUsdSendPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		act, err := wire.UsdSendAction(swag.StringValue(body.Destination), swag.Float64Value(body.Amount), nonceOrNext(s, body.Time))
		if err != nil {
			return fromSigningError(err)
		}

		res, err := s.Signing.SignUserSignedAction(ctx, &signing.UserSignedRequest{
			Action:  act,
			Mainnet: util.BoolOr(body.Mainnet, s.Config.Signer.Mainnet),
		})
		if err != nil {
			return fromSigningError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, signing.NewSignResponse(s.Signing.Address(), res, nil))
	}
}
