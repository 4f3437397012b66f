package main

import (
	"fmt"
	"os"
	"runtime"

	"hello-world/internal/app"
	"hello-world/internal/config"
	"hello-world/internal/controllers"
	"hello-world/internal/logger"
	"hello-world/internal/models"
	"hello-world/internal/shutdown"
	"hello-world/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		// No logger exists yet.
		fmt.Fprintf(os.Stderr, "hello-world: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)
	if err := run(cfg, log); err != nil {
		log.Error("Application", err, nil)
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	log.Info("Application", "starting", map[string]interface{}{
		"version":    config.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	fyneApp := fyneapp.NewWithID(config.AppID)
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.AppVersion,
	})

	program := app.Program[models.HelloWorld, models.Message]{
		Title:  config.WindowTitle,
		Init:   models.NewHelloWorld,
		Update: controllers.Update,
		View:   views.View,
	}

	application, err := app.NewApplication(fyneApp, program, cfg, log)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	if err := application.Run(shutdownManager.Context()); err != nil {
		return err
	}

	shutdownManager.Shutdown()
	log.Info("Application", "terminated", nil)
	return nil
}
