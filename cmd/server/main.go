package main

import (
	"context"
	"log/slog"
	"os"

	"bookingdesk/internal/app"
	"bookingdesk/internal/config"
	"bookingdesk/internal/infrastructure"
	"bookingdesk/pkg/contracts"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting", slog.String("version", contracts.GetFullVersionString()))

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
