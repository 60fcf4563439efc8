// Package config holds the configuration of the inventory application.
package config

import (
	"strings"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log     config.LogConfig     `koanf:"log"`
	Display config.DisplayConfig `koanf:"display"`
	Console config.ConsoleConfig `koanf:"console"`
}

// Defaults returns the values used when neither config.yaml nor the environment set a key.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":        "info",
		"log.format":       "json",
		"log.output":       "stderr",
		"display.locale":   "en-US",
		"display.currency": "$",
		"console.pause":    true,
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString(c.Display.String())
	b.WriteString(c.Console.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if err := c.Console.Validate(); err != nil {
		return err
	}
	return nil
}
