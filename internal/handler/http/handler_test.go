package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/go-user-gate/internal/config"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.App{}, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresCookieSettings(t *testing.T) {
	cfg := config.App{SessionTTL: 5 * time.Minute, InsecureCookies: true}
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, 5*time.Minute, h.sessionTTL)
	assert.True(t, h.insecureCookies)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.App{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
