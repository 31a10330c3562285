package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	OutputPath string   // csv file
	SuitePaths []string // hcl files or directories; empty means built-in suite

	TestMode   bool
	Quiet      bool
	Color      bool
	MaxRetries int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("MaxRetries must not be negative, got %d", cfg.MaxRetries)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.SuitePaths = append([]string(nil), cfg.SuitePaths...)
	return &cfg, nil
}
