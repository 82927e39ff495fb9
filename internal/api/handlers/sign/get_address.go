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

func GetAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Sign.GET("/address", getAddressHandler(s))
}

func getAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := &types.AddressResponse{
			Address: swag.String(s.Signing.Address()),
			Network: swag.String(signing.Network(s.Config.Signer.Mainnet)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
