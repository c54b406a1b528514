// Package commands implements the stylewright subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stylewright-labs/stylewright/internal/cli/config"
	"github.com/stylewright-labs/stylewright/internal/cli/output"
)

// configKey stores the loaded CLI config in the command context.
type configKey struct{}

// WithConfig returns a context carrying the CLI config.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the shared dependencies from the command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg, ok := cmd.Context().Value(configKey{}).(*config.Config)
	if !ok {
		cfg = &config.Config{ProjectDir: ".", Severity: "warning"}
	}
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}
