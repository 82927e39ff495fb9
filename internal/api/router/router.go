package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/api/handlers"
	"github/chapool/hl-signer/internal/api/httperrors"
	"github/chapool/hl-signer/internal/api/middleware"
)

func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.Logger.SetOutput(&echoLogger{level: s.Config.Logger.RequestLevel, log: log.With().Str("component", "echo").Logger()})

	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandlerWithConfig(httperrors.HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// ---
	// General middleware
	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.RecoverWithConfig(echoMiddleware.RecoverConfig{
			LogErrorFunc: middleware.LogRecoveredPanic,
		}))
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
			Generator: uuid.NewString,
		}))
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level:           s.Config.Logger.RequestLevel,
			LogRequestBody:  s.Config.Logger.LogRequestBody,
			LogResponseBody: s.Config.Logger.LogResponseBody,
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Echo.EnableMetricsMiddleware {
		s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "hl_signer",
			Subsystem:  "http",
			Registerer: s.Metrics.Registry,
		}))
	}

	s.Echo.Use(echoMiddleware.BodyLimit(s.Config.Echo.BodyLimit))

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		// Unsecured base group available at /**
		Root: s.Echo.Group(""),

		// Management endpoints, mounted at /-/**
		Management: s.Echo.Group("/-"),

		// Signing endpoints at /api/v1/**
		APIV1Sign: s.Echo.Group("/api/v1"),
	}

	s.Router.Root.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.Metrics.Registry,
	}))

	// ---
	// Finally attach our handlers
	handlers.AttachAllRoutes(s)
}
