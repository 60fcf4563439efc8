// Package main runs the interactive inventory console.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/inventory/internal/app"
	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/transport/console"
	"github.com/abgdnv/inventory/pkg/bootstrap"
	"github.com/abgdnv/inventory/pkg/config/configloader"
	"golang.org/x/sync/errgroup"
)

const serviceName = "inventory"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, sets up logging and runs the console until the user exits or a signal arrives.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logOutput, closeLog, err := bootstrap.OpenLogOutput(cfg.Log.Output)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger := bootstrap.NewLogger(cfg.Log.Level, cfg.Log.Format, logOutput)
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg.String())

	deps := app.SetupDependencies(logger)

	// The loop ends on Exit or end of input as well as on a signal; cancelling
	// runCtx on return lets the shutdown goroutine finish in every case.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := console.Pump(runCtx, os.Stdin)
	ui, err := app.SetupConsole(deps, cfg, lines, os.Stdout)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(runCtx)

	// Run the menu loop
	g.Go(func() error {
		defer cancel()
		logger.Info("Inventory console started")
		return ui.Run(gCtx)
	})
	// log why the console stopped
	g.Go(func() error {
		<-gCtx.Done()
		if ctx.Err() != nil {
			logger.Info("Signal received, shutting down...")
			return nil
		}
		logger.Info("Inventory console stopped", "products_discarded", deps.InventoryService.Count(context.Background()))
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
