package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven client configuration. Variables use the
// ANIMALSPOTTER_ prefix, e.g. ANIMALSPOTTER_BASE_URL.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL"     default:"https://lambdaanimalspotter.vapor.cloud/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Debug       bool          `envconfig:"DEBUG"        default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ANIMALSPOTTER", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, nil
}

// Options turns cfg into construction options. Explicit options passed to
// New after these win.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}

// NewFromEnv builds a Client from LoadConfig plus any extra options.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.BaseURL, append(cfg.Options(), opts...)...)
}
