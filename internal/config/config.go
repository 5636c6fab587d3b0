// Package config holds the CLI's environment configuration and logger setup.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration.
type Config struct {
	BaseURL       string `envconfig:"BASE_URL"       default:"https://lambdaanimalspotter.vapor.cloud/api"`
	LogLevel      string `envconfig:"LOG_LEVEL"      default:"info"`
	DevServerAddr string `envconfig:"DEVSERVER_ADDR" default:":8080"`
}

// Load reads ANIMALSPOTTER_* variables into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ANIMALSPOTTER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	return ParseLevel(c.LogLevel)
}

// Init initializes the global logger.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Debug().
		Str("base_url", c.BaseURL).
		Str("log_level", c.Level().String()).
		Msg("Application configuration loaded")
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
