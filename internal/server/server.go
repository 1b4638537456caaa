package server

import (
	"Bagged/cmd"
	"Bagged/internal/metrics"
	"Bagged/internal/routers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with every route registered. It does not listen.
func NewApp(server *cmd.Server) *fiber.App {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Bagged",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: server.LogService.Log.Out}))
	if cfg.Metrics.Enabled {
		app.Use(metrics.Middleware())
	}

	routers.SetupRoutes(app, server)
	return app
}
