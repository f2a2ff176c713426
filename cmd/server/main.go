package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/handler"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/server"
	"github.com/MKhiriev/go-dev-connector/internal/service"
	"github.com/MKhiriev/go-dev-connector/internal/store"
	"github.com/MKhiriev/go-dev-connector/models"
)

const role = "dev-connector-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := buildInfo()
	printBuildInfo(info)

	log := logger.NewLogger(role)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger(role, logger.WithLevel(cfg.Log.Level), logger.WithFile(cfg.Log.File))
	if cfg.App.Version == "" {
		cfg.App.Version = info.Version
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("version", cfg.App.Version).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func buildInfo() models.AppBuildInfo {
	info := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}
	return info
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
