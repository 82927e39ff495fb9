package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LoggerConfig struct {
	Skipper         echoMiddleware.Skipper
	Level           zerolog.Level
	LogRequestBody  bool
	LogResponseBody bool
}

type bodyDumpWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// LoggerWithConfig attaches a request-scoped zerolog logger to the request
// context and logs every request once it completes. Signing requests carry
// no secrets, but bodies are only logged when enabled.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = echoMiddleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			var reqBody []byte
			if config.LogRequestBody && req.Body != nil {
				var err error
				reqBody, err = io.ReadAll(req.Body)
				if err != nil {
					l.Error().Err(err).Msg("Failed to read request body")
					return err
				}
				c.Request().Body = io.NopCloser(bytes.NewBuffer(reqBody))
			}

			var resBody *bytes.Buffer
			if config.LogResponseBody {
				resBody = new(bytes.Buffer)
				res.Writer = &bodyDumpWriter{Writer: io.MultiWriter(resBody, res.Writer), ResponseWriter: res.Writer}
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			e := l.WithLevel(config.Level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start))
			if reqBody != nil {
				e = e.Bytes("req_body", reqBody)
			}
			if resBody != nil {
				e = e.Bytes("res_body", resBody.Bytes())
			}
			e.Msg("http request")

			return nil
		}
	}
}

// LogRecoveredPanic is used by the recover middleware.
func LogRecoveredPanic(c echo.Context, err error, stack []byte) error {
	zerolog.Ctx(c.Request().Context()).Error().Err(err).Bytes("stack", stack).Msg("Recovered from panic")
	return err
}
