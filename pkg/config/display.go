package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DisplayConfig controls how prices and stock levels are rendered.
type DisplayConfig struct {
	Locale   string `koanf:"locale"`
	Currency string `koanf:"currency"`
}

// String returns a string representation of the display configuration.
func (c *DisplayConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Display ---\n")
	b.WriteString(fmt.Sprintf("  locale: %s\n", c.Locale))
	b.WriteString(fmt.Sprintf("  currency: %s\n", c.Currency))
	return b.String()
}

func (c *DisplayConfig) Validate() error {
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Language parses Locale as a BCP 47 tag.
func (c *DisplayConfig) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid display locale %q: %w", c.Locale, err)
	}
	return tag, nil
}
