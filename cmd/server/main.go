package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"dayadmin/internal/app/server"
	"dayadmin/internal/app/server/config"
	"dayadmin/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(cfg, log)
	if err != nil {
		log.Error("failed to init server", slog.Any("error", err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
