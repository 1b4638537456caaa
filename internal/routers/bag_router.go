package routers

import (
	"Bagged/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBagRouter(app *fiber.App, server *cmd.Server) {
	bagHandler := server.BagHandler
	app.Get("/bags", bagHandler.ListBags)
	app.Post("/bags", bagHandler.CreateBag)
	app.Get("/bags/:id", bagHandler.GetBagByID)
	app.Delete("/bags/:id", bagHandler.DeleteBag)
}
