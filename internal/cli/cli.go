package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/syssam/cyphering/graph"
	"github.com/syssam/cyphering/internal/app"
)

// Environment variables providing flag defaults.
const (
	EnvFormat    = "CYPHERING_FORMAT"
	EnvLogLevel  = "CYPHERING_LOG_LEVEL"
	EnvLogFormat = "CYPHERING_LOG_FORMAT"
	EnvWorkers   = "CYPHERING_WORKERS"
	EnvStrict    = "CYPHERING_STRICT"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments with defaults taken from getenv. It
// returns the run configuration, whether the program should exit cleanly
// (help was shown), or an *ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	defaults, err := envDefaults(getenv)
	if err != nil {
		return nil, false, err
	}

	fs := flag.NewFlagSet("cyphering", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
cyphering - resolves the placeholders of a graph-schema model and records
the dependencies between its entities.

Usage:
  cyphering [options] MODEL_PATH [options]

Arguments:
  MODEL_PATH
    Path to a .yaml, .yml or .hcl model file.

Options:
`)
		fs.PrintDefaults()
	}

	modelFlag := fs.String("model", "", "Path to the model file.")
	outputFlag := fs.String("output", "", "Write the expanded model to this file instead of stdout.")
	formatFlag := fs.String("format", defaults.format, "Output format. Options: 'json', 'yaml' or 'msgpack'.")
	strictFlag := fs.Bool("strict", defaults.strict, "Fail on malformed placeholders and relationship types.")
	validateFlag := fs.Bool("validate", false, "Validate the expanded model; errors fail the run.")
	workersFlag := fs.Int("workers", defaults.workers, "Number of expansion workers. 0 uses one per CPU.")
	watchFlag := fs.Bool("watch", false, "Re-run whenever the model file changes.")
	logLevelFlag := fs.String("log-level", defaults.logLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", defaults.logFormat, "Log output format. Options: 'text' or 'json'.")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}

	path := *modelFlag
	if path == "" && len(positional) > 0 {
		path = positional[0]
	}
	if path == "" {
		fs.Usage()
		return nil, false, usageError("a model path is required")
	}
	if len(positional) > 1 || (*modelFlag != "" && len(positional) > 0) {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(positional, " "))
	}

	format, err := graph.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, usageError("invalid format %q: must be 'json', 'yaml' or 'msgpack'", *formatFlag)
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	cfg, err := app.NewConfig(app.Config{
		ModelPath:  path,
		OutputPath: *outputFlag,
		Format:     format,
		Strict:     *strictFlag,
		Validate:   *validateFlag,
		Workers:    *workersFlag,
		Watch:      *watchFlag,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	})
	if err != nil {
		return nil, false, usageError("%s", err)
	}
	return cfg, false, nil
}

// parseInterspersed parses flags given before and after positional
// arguments and returns the positional ones in order. Arguments after "--"
// are positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

type envDefault struct {
	format    string
	logLevel  string
	logFormat string
	workers   int
	strict    bool
}

func envDefaults(getenv func(string) string) (envDefault, error) {
	d := envDefault{
		format:    orDefault(getenv(EnvFormat), string(graph.FormatYAML)),
		logLevel:  orDefault(getenv(EnvLogLevel), "info"),
		logFormat: orDefault(getenv(EnvLogFormat), "text"),
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return d, usageError("invalid %s %q: %s", EnvWorkers, v, err)
		}
		d.workers = n
	}
	if v := getenv(EnvStrict); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return d, usageError("invalid %s %q: %s", EnvStrict, v, err)
		}
		d.strict = b
	}
	return d, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
