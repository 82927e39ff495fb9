package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/api/handlers/common"
	"github/chapool/hl-signer/internal/api/handlers/sign"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetReadyRoute(s),
		sign.GetAddressRoute(s),
		sign.PostHashRoute(s),
		sign.PostSignL1Route(s),
		sign.PostSignMultiSigRoute(s),
		sign.PostSignUserRoute(s),
		sign.PostSignOrderRoute(s),
		sign.PostSignCancelRoute(s),
		sign.PostSignUsdSendRoute(s),
	}
}
