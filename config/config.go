package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	APIAddr            string        `env:"API_ADDR" envDefault:":5000"`
	Debug              bool          `env:"DEBUG" envDefault:"1"`
	MaxBatchSize       int           `env:"MAX_BATCH_SIZE" envDefault:"1000"`
	MaxExportRecords   int           `env:"MAX_EXPORT_RECORDS" envDefault:"100000"`
	MaxErrors          float64       `env:"MAX_ERRORS" envDefault:"1000"`
	ReproducibleErrors bool          `env:"REPRODUCIBLE_ERRORS" envDefault:"1"`
	CorsOrigins        []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// New reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("config: MAX_BATCH_SIZE must be at least 1, got %d", c.MaxBatchSize)
	}
	if c.MaxExportRecords < c.MaxBatchSize {
		return fmt.Errorf("config: MAX_EXPORT_RECORDS (%d) must be at least MAX_BATCH_SIZE (%d)", c.MaxExportRecords, c.MaxBatchSize)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("config: MAX_ERRORS must not be negative, got %v", c.MaxErrors)
	}
	if len(c.CorsOrigins) == 0 {
		return fmt.Errorf("config: CORS_ORIGINS must not be empty")
	}
	return nil
}
