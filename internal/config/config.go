package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "PASSGEN"

type Config struct {
	Env          string `envconfig:"ENV" default:"development"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	SettingsPath string `envconfig:"SETTINGS_PATH" default:"configure.bin"`
}

// Load reads the configuration from PASSGEN_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.SettingsPath == "" {
		return Config{}, fmt.Errorf("%s_SETTINGS_PATH must not be empty", envPrefix)
	}

	return cfg, nil
}
