package routers

import (
	"Bagged/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupCuboidRouter(app *fiber.App, server *cmd.Server) {
	cuboidHandler := server.CuboidHandler
	app.Get("/cuboids", cuboidHandler.ListCuboids)
	app.Post("/cuboids", cuboidHandler.CreateCuboid)
	app.Get("/cuboids/:id", cuboidHandler.GetCuboidByID)
	app.Put("/cuboids/:id", cuboidHandler.UpdateCuboid)
	app.Patch("/cuboids/:id", cuboidHandler.UpdateCuboid)
	app.Delete("/cuboids/:id", cuboidHandler.DeleteCuboid)
}
