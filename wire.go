//go:build wireinject
// +build wireinject

package main

import (
	"Bagged/cmd"
	"Bagged/database"
	"Bagged/internal/config"
	"Bagged/internal/events"
	"Bagged/internal/handlers"
	"Bagged/internal/repository"
	"Bagged/internal/services"
	"github.com/google/wire"
	"os"
)

func Provider() (*config.Configuration, error) {
	path := os.Getenv("BAGGED_CONFIG")
	if path == "" {
		path = "bagged.yaml"
	}
	return config.LoadConfiguration(path)
}

func InitializeServer() (*cmd.Server, func(), error) {
	wire.Build(
		cmd.NewServer,
		services.NewBagService,
		handlers.NewBagHandler,
		services.NewCuboidService,
		handlers.NewCuboidHandler,
		repository.NewStore,
		database.SetupDatabase,
		events.NewPublisher,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil, nil
}
