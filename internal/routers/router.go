package routers

import (
	"Bagged/cmd"
	"Bagged/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupHealthRouter(app)
	if server.Configuration.Metrics.Enabled {
		app.Get(server.Configuration.Metrics.Path, metrics.Handler())
	}
	SetupBagRouter(app, server)
	SetupCuboidRouter(app, server)
	SetupJanitorRouter(app, server)
}
