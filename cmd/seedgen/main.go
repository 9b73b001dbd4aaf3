// Command seedgen generates synthetic demo data for the hardware-store
// storefront: a run of daily orders across a fixed date range, written
// as orders.csv and order-items.csv for bulk import.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aamuros/hardware-store-sub002/internal/app"
	"github.com/aamuros/hardware-store-sub002/internal/config"
	"github.com/aamuros/hardware-store-sub002/pkg/logger"
)

func main() {
	// Load configuration from environment variables; every setting has
	// a default, so a bare invocation works.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger.
	log := logger.New("seedgen", cfg.LogLevel)
	log.Info("starting seed generator",
		slog.String("environment", cfg.Environment),
		slog.String("output_dir", cfg.OutputDir),
	)

	// Create a context that is canceled on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run the generation pass. This blocks until both files are written.
	if err := app.New(cfg, log).Run(ctx); err != nil {
		log.Error("seed generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
