package http

import (
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// hasher verifies the HashSHA256 header of request bodies; nil when no
	// hash key is configured.
	hasher  *utils.Hasher
	limiter *accountLimiter

	requestTimeout time.Duration
	logger         *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		validator:      validators.NewVaultValidator(cfg.Vault.MinSecretLength),
		limiter:        newAccountLimiter(cfg.Vault.UnlockRatePerMinute, cfg.Vault.UnlockBurst),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}
