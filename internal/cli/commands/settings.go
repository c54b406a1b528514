package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stylewright-labs/stylewright/internal/cli/output"
	"github.com/stylewright-labs/stylewright/pkg/style"
)

// NewSettingsCommand creates the settings command.
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings [file]",
		Short: "Show the resolved stylecop.json settings",
		Long: `Resolve and print the settings artifact the analysis would use: the
given file, or the one found in the project directory or its nearest
ancestor. Parsing is strict so malformed artifacts are reported instead
of silently falling back to defaults.`,
		Example: `  # Resolve settings for the project directory
  stylewright settings

  # Validate a specific artifact
  stylewright settings path/to/stylecop.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			var (
				sources []style.Source
				err     error
			)
			if len(args) == 1 {
				text, readErr := os.ReadFile(args[0])
				if readErr != nil {
					return readErr
				}
				sources = []style.Source{{Path: args[0], Text: string(text)}}
			} else if sources, err = collectSettingsSources(cmdCtx.Cfg.ProjectDir); err != nil {
				return err
			}

			resolver := style.NewResolver(
				style.WithStrictSettings(),
				style.WithResolverLogger(cmdCtx.Logger),
			)
			settings, err := resolver.Resolve(cmd.Context(), sources)
			if err != nil {
				var cfgErr *style.ConfigurationError
				if errors.As(err, &cfgErr) {
					return fmt.Errorf("malformed settings artifact %s: %w", cfgErr.Path, cfgErr.Err)
				}
				return err
			}

			return renderSettings(cmdCtx.Renderer, sources, settings)
		},
	}
	return cmd
}

func renderSettings(r *output.Renderer, sources []style.Source, settings *style.Settings) error {
	path := ""
	if len(sources) > 0 {
		path = sources[0].Path
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(struct {
			Path                string   `json:"path,omitempty"`
			ExcludedFiles       []string `json:"excludedFiles"`
			ExcludedFileFilters []string `json:"excludedFileFilters"`
		}{
			Path:                path,
			ExcludedFiles:       settings.ExcludedFiles,
			ExcludedFileFilters: settings.ExcludedFileFilters,
		})
	}

	styled := r.EffectiveMode() == output.ModeText
	if path == "" {
		r.Println("No settings artifact found; using defaults.")
	} else if styled {
		r.Printf("Settings artifact: %s\n", output.StylePath.Render(path))
	} else {
		r.Printf("Settings artifact: %s\n", path)
	}

	r.Printf("\nExcluded files (%d):\n", len(settings.ExcludedFiles))
	printEntries(r, settings.ExcludedFiles, styled)
	r.Printf("\nExcluded file filters (%d):\n", len(settings.ExcludedFileFilters))
	printEntries(r, settings.ExcludedFileFilters, styled)
	return nil
}

func printEntries(r *output.Renderer, entries []string, styled bool) {
	if len(entries) == 0 {
		none := "(none)"
		if styled {
			none = output.StyleSubdued.Render(none)
		}
		r.Printf("  %s\n", none)
		return
	}
	for _, e := range entries {
		r.Printf("  %s\n", e)
	}
}
