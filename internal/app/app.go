package app

import (
	"context"
	"io"
	"log/slog"
)

// App runs the model pipeline for one configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// New returns an App that writes the encoded model to outW (unless an
// output path is configured) and its logs to logW.
func New(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("logger configured", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Run performs one run, or keeps re-running on changes in watch mode until
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Watch {
		return a.watch(ctx)
	}
	return a.runOnce(ctx)
}
