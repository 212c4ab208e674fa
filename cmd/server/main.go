package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planets-api/internal/planet"
	"planets-api/internal/server"
	"planets-api/internal/shared/config"
	"planets-api/internal/shared/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := planet.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := closeStore(closeCtx); err != nil {
			log.Error("Failed to close planet store", "error", err)
		}
	}()

	planetService := planet.NewService(store, log.With("component", "planet_service"))
	routes := server.NewRoutes(planetService, cfg.Server.Environment, cfg.Site, log)

	return server.Run(ctx, cfg, server.Handler(ctx, cfg, routes))
}
