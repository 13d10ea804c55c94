package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/thoughts/internal/client"
	"github.com/MKhiriev/thoughts/internal/config"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/internal/tui"
	"github.com/MKhiriev/thoughts/models"
	"github.com/fatih/color"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		color.Red("error getting configs: %v", err)
		return
	}

	log := logger.NewClientLogger("thoughts-client", cfg.Log.FilePath, cfg.Log.Level)
	ctx := log.WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewClientServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.RunContext(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		color.Red("thoughts: %v", err)
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "dev"
	}
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", color.CyanString(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", color.New(color.Faint).Sprint(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", color.New(color.Faint).Sprint(info.BuildCommit()))

	return info
}
