package handler

import (
	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/handler/http"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
