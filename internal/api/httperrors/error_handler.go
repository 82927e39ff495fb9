package httperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github/chapool/hl-signer/internal/types"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

func HTTPErrorHandler(err error, c echo.Context) {
	HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: true,
	})(err, c)
}

// HTTPErrorHandlerWithConfig renders every error as a PublicHTTPError body.
// Unknown errors become a 500 whose detail is only exposed when configured.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			he  *HTTPError
			hve *HTTPValidationError
			ee  *echo.HTTPError
		)

		var body any
		var code int

		switch {
		case errors.As(err, &hve):
			body, code = hve, int(*hve.Code)
		case errors.As(err, &he):
			body, code = he, int(*he.Code)
		case errors.As(err, &ee):
			he = NewFromEcho(ee)
			body, code = he, ee.Code
		default:
			he = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !config.HideInternalServerErrorDetails {
				he.Detail = err.Error()
			}
			body, code = he, http.StatusInternalServerError
		}

		log := zerolog.Ctx(c.Request().Context())
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request rejected")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			log.Warn().Err(err).AnErr("http_err", err).Msg("Failed to handle HTTP error")
		}
	}
}
