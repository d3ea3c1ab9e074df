package main

import (
	"context"
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/handler"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/server"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/workers"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == config.Defaults().App.Version && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	srv.RunServer()
}
