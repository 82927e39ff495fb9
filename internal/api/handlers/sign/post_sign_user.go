package sign

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/crypto/eip712"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostSignUserRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/sign/user", postSignUserHandler(s))
}

// postSignUserHandler signs a user-signed action. The response echoes the
// action with the chain fields that were signed, ready to be submitted.
func postSignUserHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostSignUserPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		fields := make([]eip712.Field, 0, len(body.Types))
		for _, f := range body.Types {
			fields = append(fields, eip712.Field{
				Name: swag.StringValue(f.Name),
				Type: swag.StringValue(f.Type),
			})
		}

		res, err := s.Signing.SignUserSignedAction(ctx, &signing.UserSignedRequest{
			Action:      body.Action,
			PrimaryType: body.PrimaryType,
			Fields:      fields,
			Mainnet:     util.BoolOr(body.Mainnet, s.Config.Signer.Mainnet),
		})
		if err != nil {
			return fromSigningError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, signing.NewSignResponse(s.Signing.Address(), res, nil))
	}
}
