package routers

import (
	"Bagged/cmd"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	janitor := server.JanitorService
	log := server.LogService.Log
	app.Post("/janitor/clean", func(ctx *fiber.Ctx) error {
		if err := janitor.ForceStartCleanCycle(); err != nil {
			log.WithFields(logrus.Fields{"job": "clean", "error": err.Error()}).Warn("forced clean refused")
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "started"})
	})
}
