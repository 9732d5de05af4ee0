package http

import (
	"time"

	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
)

// cookieSettings describes the session cookie written on login.
type cookieSettings struct {
	name   string
	secure bool
}

type Handler struct {
	services *service.Services

	cookie         cookieSettings
	allowedOrigins []string
	requestTimeout time.Duration
	maxUploadSize  int64
	photoDir       string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie: cookieSettings{
			name:   cfg.App.SessionCookieName,
			secure: cfg.App.SessionCookieSecure,
		},
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		photoDir:       cfg.Storage.Files.PhotoDir,
		logger:         logger,
	}
}
