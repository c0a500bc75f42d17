package expand

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/syssam/cyphering"
)

// Config holds the expansion settings.
type Config struct {
	// Strict turns malformed placeholders and relationship signatures into
	// errors. Expansion results are the same in both modes.
	Strict bool
	// Workers bounds the number of entities expanded concurrently.
	Workers int
	// Keyword replaces self references in attribute values and self
	// endpoints of relationship signatures.
	Keyword string
	// Logger receives per-entity debug records.
	Logger *slog.Logger
}

// Option configures expansion.
type Option func(*Config) error

// WithStrict enables or disables strict mode.
func WithStrict(strict bool) Option {
	return func(c *Config) error {
		c.Strict = strict
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return cyphering.NewConfigError("Workers", n, "must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithKeyword sets the self-reference keyword used for attribute values.
// The keyword must not hold placeholder syntax.
func WithKeyword(keyword string) Option {
	return func(c *Config) error {
		switch {
		case keyword == "":
			return cyphering.NewConfigError("Keyword", nil, "keyword cannot be empty")
		case strings.ContainsAny(keyword, string(Prefix)+string(Separator)):
			return cyphering.NewConfigError("Keyword", keyword, "keyword cannot contain '$' or '.'")
		}
		c.Keyword = keyword
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return cyphering.NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Workers: runtime.GOMAXPROCS(0),
		Keyword: Keyword,
		Logger:  slog.Default(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
