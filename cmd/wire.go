package cmd

import (
	"Bagged/internal/config"
	"Bagged/internal/handlers"
	"Bagged/internal/services"
)

type Server struct {
	Configuration  *config.Configuration
	BagService     services.BagService
	BagHandler     *handlers.BagHandler
	CuboidService  services.CuboidService
	CuboidHandler  *handlers.CuboidHandler
	LogService     services.LogService
	JanitorService *services.Janitor
}

func NewServer(
	configuration *config.Configuration,
	bagService services.BagService,
	bagHandler *handlers.BagHandler,
	cuboidService services.CuboidService,
	cuboidHandler *handlers.CuboidHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Configuration:  configuration,
		BagService:     bagService,
		BagHandler:     bagHandler,
		CuboidService:  cuboidService,
		CuboidHandler:  cuboidHandler,
		LogService:     logService,
		JanitorService: janitorService,
	}
}
