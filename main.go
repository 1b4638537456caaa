package main

import (
	"Bagged/internal/server"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	srv, cleanup, err := InitializeServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	defer cleanup()

	logger := srv.LogService.Log
	if err := srv.JanitorService.StartCleanCycle(); err != nil {
		logger.Fatalf("Failed to start janitor: %v", err)
	}
	defer srv.JanitorService.StopClean()

	app := server.NewApp(srv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Errorf("Failed to shut down: %v", err)
		}
	}()

	port := srv.Configuration.Server.Port
	logger.WithFields(logrus.Fields{"port": port}).Info("starting server")
	if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
		logger.Errorf("Failed to start server: %v", err)
	}
}
