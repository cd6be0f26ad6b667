// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/handler"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/metrics"
	"github.com/MKhiriev/go-fin-tracker/internal/server"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("fintrack-server")

	// a missing .env file is normal outside of local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "dev" && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	err = db.Migrate(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	metrics.Init(cfg.App.Version)
	if err = metrics.RegisterDB(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Warn().Err(err).Msg("error registering database metrics")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg.App, log)
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

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
