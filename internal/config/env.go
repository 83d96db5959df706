package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the server and lambda entrypoints
type Config struct {
	Port         int           `env:"SQUADRON_PORT"          envDefault:"50051"`
	DataDir      string        `env:"SQUADRON_DATA_DIR"      envDefault:"data"`
	Verbose      bool          `env:"SQUADRON_VERBOSE"       envDefault:"false"`
	SolveTimeout time.Duration `env:"SQUADRON_SOLVE_TIMEOUT" envDefault:"10s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and checks it
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid SQUADRON_PORT %d", cfg.Port)
	}
	if cfg.SolveTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid SQUADRON_SOLVE_TIMEOUT %s", cfg.SolveTimeout)
	}
	return cfg, nil
}

// Address returns the listen address for the configured port
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
