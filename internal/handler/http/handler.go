package http

import (
	"time"

	"github.com/avoronin/go-user-gate/internal/config"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/service"
)

type Handler struct {
	services *service.Services

	// sessionTTL is the max-age applied to issued session cookies.
	sessionTTL time.Duration

	// insecureCookies drops the Secure attribute for plain-HTTP local runs.
	insecureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		sessionTTL:      cfg.SessionTTL,
		insecureCookies: cfg.InsecureCookies,
		logger:          logger,
	}
}
