package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"newspage/internal/app"
	"newspage/internal/config"
	"newspage/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.json", "path to JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("FATAL: could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: invalid config: %v", err)
	}

	appLogger := logger.New(cfg.Logger)
	slog.SetDefault(appLogger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(cfg, appLogger)
	if err != nil {
		slog.Error("Failed to initialize application",
			slog.String("component", "app"),
			slog.Any("error", err),
		)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		slog.Error("News page generation failed",
			slog.String("component", "app"),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
