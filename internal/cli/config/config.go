// Package config loads stylewright's own CLI configuration.
//
// Precedence, highest to lowest: command-line flags, STYLEWRIGHT_*
// environment variables, a stylewright.yaml config file, built-in defaults.
// This configuration controls the tool; the analyzed project's style
// settings (stylecop.json) are resolved separately by pkg/style.
package config

import (
	"context"
	"log/slog"
	"os"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// ProjectDir is the directory scanned for tree dumps and settings
	// artifacts.
	ProjectDir string `koanf:"project_dir"`

	// OutputFormat selects the renderer mode: text, markdown, or json.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Severity is the minimum severity reported by check.
	Severity string `koanf:"severity"`

	// StrictSettings makes malformed stylecop.json files fail the run
	// instead of falling back to defaults.
	StrictSettings bool `koanf:"strict_settings"`

	// Jobs bounds concurrent tree analysis; 0 means one per CPU.
	Jobs int `koanf:"jobs"`

	// DisabledRules lists rule IDs to skip.
	DisabledRules []string `koanf:"disabled_rules"`
}

// loggerKey stores the logger in a command context.
type loggerKey struct{}

// WithLogger returns a context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the context's logger, or a stderr text logger when none
// was installed.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
