package main

import (
	"context"
	"fmt"

	"github.com/avoronin/go-user-gate/internal/config"
	"github.com/avoronin/go-user-gate/internal/crypto"
	"github.com/avoronin/go-user-gate/internal/handler"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/server"
	"github.com/avoronin/go-user-gate/internal/service"
	"github.com/avoronin/go-user-gate/internal/store"
	"github.com/avoronin/go-user-gate/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-gate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	hasher := crypto.NewScryptHasher(
		cfg.App.ScryptCost,
		workers.NewPool(cfg.App.HashConcurrency),
		log,
	)

	services := service.NewServices(storages, hasher, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
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
