package client

import (
	"context"
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/adapter"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/tui"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

// NewApp wires the HTTP adapter, the client services and the terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	vaultAdapter, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create vault adapter: %w", err)
	}

	services := service.NewClientServices(vaultAdapter, logger)

	return &App{
		services: services,
		ui:       tui.New(services, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits, then locks the vault so no session
// outlives the client.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := a.ui.Run(ctx)

	if err := a.services.VaultCache.Lock(context.Background()); err != nil {
		a.logger.Debug().Err(err).Str("func", "*App.Run").Msg("lock on exit failed")
	}

	return runErr
}
