// Package cli provides the command-line interface for stylewright.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stylewright-labs/stylewright/internal/cli/commands"
	"github.com/stylewright-labs/stylewright/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stylewright",
		Short: "stylewright - style checking for host-parsed token streams",
		Long: `stylewright runs style rules against syntax-tree dumps produced by a host
parser. Per-project exclusions come from stylecop.json files next to the
analyzed sources; the tool's own behavior is configured via stylewright.yaml,
environment variables, and flags.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, configFileUsed, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			if cfg.Verbose && configFileUsed != "" {
				logger.Debug("using config file", "path", configFileUsed)
			}

			ctx := config.WithLogger(cmd.Context(), logger)
			ctx = commands.WithConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to stylewright.yaml")
	pf.String("project-dir", ".", "Directory scanned for tree dumps and settings")
	pf.StringP("format", "f", "", "Output format: text, markdown, json")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
