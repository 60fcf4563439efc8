// Package configloader loads layered configuration with koanf.
package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

const (
	configFile = "config.yaml"
	envFile    = ".env"
)

// Load builds a T from, in increasing priority: defaults, config.yaml, .env and the process environment.
// Environment keys are <SERVICENAME>_SECTION_KEY, e.g. INVENTORY_LOG_LEVEL for log.level.
func Load[T Validator](serviceName string, defaults map[string]any) (T, error) {
	var cfg T
	k := koanf.New(".")

	envPrefix := fmt.Sprintf("%s_", strings.ToUpper(serviceName))

	// built-in defaults, overridden by every source below
	if len(defaults) > 0 {
		if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
			return cfg, fmt.Errorf("error loading default config: %w", err)
		}
	}

	// config.yaml in the working directory is optional
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	toKey := keyTransformer(envPrefix)
	loadDotEnv(k, toKey)

	// process environment wins over .env
	if err := k.Load(env.Provider(envPrefix, ".", toKey), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// keyTransformer maps PREFIX_SECTION_KEY to section.key, e.g. INVENTORY_LOG_LEVEL to log.level.
func keyTransformer(envPrefix string) func(string) string {
	prefix := strings.ToLower(envPrefix)
	return func(key string) string {
		key = strings.TrimPrefix(strings.ToLower(key), prefix)
		return strings.ReplaceAll(key, "_", ".")
	}
}

// loadDotEnv merges .env from the working directory, if present, into k.
func loadDotEnv(k *koanf.Koanf, toKey func(string) string) {
	values, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error reading %s: %v", envFile, err)
		}
		return
	}
	envMap := make(map[string]any, len(values))
	for key, value := range values {
		envMap[toKey(key)] = value
	}
	if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
		log.Printf("WARN: error loading %s: %v", envFile, err)
	}
}
