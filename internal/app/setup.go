// Package app contains the application setup for the inventory console.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/internal/transport/console"
)

type Dependencies struct {
	InventoryService service.InventoryService
	Logger           *slog.Logger
}

// SetupDependencies creates an empty in-memory inventory and the service on top of it.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	iService := service.NewService(store.NewInMemoryStore(), logger)

	return &Dependencies{
		InventoryService: iService,
		Logger:           logger,
	}
}

// SetupConsole creates the menu controller reading from lines and writing to out.
func SetupConsole(deps *Dependencies, cfg *config.Config, lines <-chan string, out io.Writer) (*console.Console, error) {
	tag, err := cfg.Display.Language()
	if err != nil {
		return nil, fmt.Errorf("failed to set up console: %w", err)
	}
	opts := console.Options{
		Pause:    cfg.Console.Pause,
		Locale:   tag,
		Currency: cfg.Display.Currency,
	}
	return console.NewConsole(deps.InventoryService, lines, out, opts, deps.Logger), nil
}
