package config

import (
	"fmt"
	"strings"
)

type ConsoleConfig struct {
	// Pause waits for Enter after each completed action.
	Pause bool `koanf:"pause"`
}

// String returns a string representation of the ConsoleConfig.
func (c *ConsoleConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Console ---\n")
	b.WriteString(fmt.Sprintf("  pause: %t\n", c.Pause))
	return b.String()
}

func (c *ConsoleConfig) Validate() error {
	return nil
}
