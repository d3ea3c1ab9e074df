package handler

import (
	"testing"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	cfg := *config.Defaults()

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)

	cfg.Server.HTTPAddress = ""
	_, err = NewHandlers(&service.Services{}, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
