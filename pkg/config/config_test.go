package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func Test_LogConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       LogConfig
		expectErr bool
	}{
		{name: "defaults", cfg: LogConfig{Level: "info", Format: "json", Output: "stderr"}},
		{name: "empty", cfg: LogConfig{}},
		{name: "file output", cfg: LogConfig{Level: "debug", Format: "text", Output: "/tmp/inventory.log"}},
		{name: "bad level", cfg: LogConfig{Level: "trace"}, expectErr: true},
		{name: "bad format", cfg: LogConfig{Format: "xml"}, expectErr: true},
		{name: "stdout output", cfg: LogConfig{Output: "stdout"}, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_DisplayConfig(t *testing.T) {
	cfg := DisplayConfig{Locale: "de-DE", Currency: "€"}
	require.NoError(t, cfg.Validate())
	tag, err := cfg.Language()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), tag)
	assert.Contains(t, cfg.String(), "currency: €")

	bad := DisplayConfig{Locale: "not a locale!"}
	assert.Error(t, bad.Validate())
}

func Test_ConsoleConfig_String(t *testing.T) {
	cfg := ConsoleConfig{Pause: true}
	assert.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.String(), "pause: true")
}
