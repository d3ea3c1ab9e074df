package main

import (
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/client"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
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

	log := logger.NewClientLogger("vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
