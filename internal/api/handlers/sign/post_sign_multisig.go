package sign

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/signing"
	"github/chapool/hl-signer/internal/types"
	"github/chapool/hl-signer/internal/util"
)

func PostSignMultiSigRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.POST("/sign/multisig", postSignMultiSigHandler(s))
}

func postSignMultiSigHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostSignMultiSigPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		nonce := nonceOrNext(s, body.Nonce)
		res, err := s.Signing.SignMultiSigAction(ctx, &signing.MultiSigRequest{
			Action:       body.Action,
			Nonce:        nonce,
			VaultAddress: body.VaultAddress,
			ExpiresAfter: toUint64Ptr(body.ExpiresAfter),
			Mainnet:      util.BoolOr(body.Mainnet, s.Config.Signer.Mainnet),
		})
		if err != nil {
			return fromSigningError(err)
		}

		// The envelope is an internal artifact; callers only need the signature.
		res.Action = nil

		return util.ValidateAndReturn(c, http.StatusOK, signing.NewSignResponse(s.Signing.Address(), res, &nonce))
	}
}
