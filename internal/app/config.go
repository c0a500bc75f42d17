package app

import (
	"errors"

	"github.com/syssam/cyphering/graph"
)

// Config holds everything a run needs.
type Config struct {
	ModelPath  string
	OutputPath string // empty writes to the app output
	Format     graph.Format

	Strict   bool
	Validate bool
	Workers  int // 0 uses the expander default
	Watch    bool

	LogLevel  string
	LogFormat string
}

// NewConfig checks cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("model path is required")
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers cannot be negative")
	}
	if cfg.Format == "" {
		cfg.Format = graph.FormatYAML
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
