package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/hl-signer/internal/api"
)

// statusNotReady is returned while the server or its key is not initialized.
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when the server is ready to sign.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
