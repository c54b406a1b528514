package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stylewright-labs/stylewright/internal/cli/config"
	"github.com/stylewright-labs/stylewright/internal/cli/output"
	"github.com/stylewright-labs/stylewright/pkg/style"
	_ "github.com/stylewright-labs/stylewright/pkg/style/rules" // register rules
	"github.com/stylewright-labs/stylewright/pkg/syntax"
)

// treeDumpSuffix is the file suffix of host-produced syntax tree dumps.
const treeDumpSuffix = ".tree.json"

// ErrIssuesFound is returned when check reports at least one diagnostic at
// or above the severity threshold.
var ErrIssuesFound = errors.New("style issues found")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths    []string // Tree dump files or directories
	Rules    []string // Run only specific rules
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Strict   bool     // Fail on malformed stylecop.json
	Jobs     int      // Worker limit
	Watch    bool     // Re-run on changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path ...]",
		Short: "Run style rules against syntax tree dumps",
		Long: `Analyze host-produced syntax tree dumps (*.tree.json) and report style
violations. Exclusions are read from the project's stylecop.json.

Output adapts to environment:
  - Terminal: styled output with colors
  - Piped/Scripted: markdown format
  - JSON: machine-readable format`,
		Example: `  # Check every tree dump under the project directory
  stylewright check

  # Check specific dumps
  stylewright check build/Program.tree.json

  # Only report errors, as JSON
  stylewright check --severity error --format json

  # Disable a rule and re-run on changes
  stylewright check --disable LA03 --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity: error, warning, info, hint")
	cmd.Flags().BoolVar(&opts.Strict, "strict-settings", false, "Fail on malformed stylecop.json")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 0, "Concurrent tree analysis limit (0 = one per CPU)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when dumps or settings change")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{cfg.ProjectDir}
	}

	severity := opts.Severity
	if severity == "" {
		severity = cfg.Severity
	}
	threshold, err := style.ParseSeverity(severity)
	if err != nil {
		return err
	}

	if opts.Watch {
		return runCheckWatch(cmd, cmdCtx, opts, paths, threshold)
	}

	count, err := runCheckOnce(cmd.Context(), cmdCtx, opts, paths, threshold)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d at %s or above", ErrIssuesFound, count, threshold)
	}
	return nil
}

// runCheckOnce performs one full analysis pass and renders the results.
// It returns the number of reported diagnostics.
func runCheckOnce(ctx context.Context, cmdCtx *CommandContext, opts *CheckOptions, paths []string, threshold style.Severity) (int, error) {
	dumps, err := discoverTreeDumps(paths)
	if err != nil {
		return 0, err
	}
	if len(dumps) == 0 {
		return 0, fmt.Errorf("no %s files found under %s", treeDumpSuffix, strings.Join(paths, ", "))
	}

	trees := make([]*syntax.Tree, 0, len(dumps))
	for _, dump := range dumps {
		tree, err := syntax.ReadTree(dump)
		if err != nil {
			return 0, err
		}
		trees = append(trees, tree)
	}

	sources, err := collectSettingsSources(cmdCtx.Cfg.ProjectDir)
	if err != nil {
		return 0, err
	}

	runCfg := style.NewRunConfig()
	for _, id := range cmdCtx.Cfg.DisabledRules {
		runCfg.Disable(id)
	}
	for _, id := range opts.Disable {
		runCfg.Disable(id)
	}

	sess := style.NewSession(style.Options{
		Sources: sources,
		Strict:  opts.Strict || cmdCtx.Cfg.StrictSettings,
		Config:  runCfg,
		Logger:  cmdCtx.Logger,
		Workers: pickJobs(opts.Jobs, cmdCtx.Cfg.Jobs),
	})
	cmdCtx.Logger.Debug("analysis session started",
		"session", sess.ID(), "trees", len(trees), "rules", len(sess.Rules()))

	results, err := sess.Analyze(ctx, trees)
	if err != nil {
		return 0, err
	}

	results = filterResults(results, opts.Rules, threshold)
	return renderCheckResults(cmdCtx.Renderer, results)
}

func pickJobs(flagJobs, cfgJobs int) int {
	if flagJobs > 0 {
		return flagJobs
	}
	return cfgJobs
}

// discoverTreeDumps expands the given paths into a sorted list of tree dump
// files. Directories are walked recursively; explicit files are taken as-is.
func discoverTreeDumps(paths []string) ([]string, error) {
	var dumps []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			dumps = append(dumps, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, treeDumpSuffix) {
				dumps = append(dumps, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(dumps)
	return dumps, nil
}

// collectSettingsSources gathers the non-code configuration artifacts for
// the session: the settings file in the project directory or the nearest
// ancestor carrying one.
func collectSettingsSources(projectDir string) ([]style.Source, error) {
	dir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, err
	}

	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(entry.Name(), style.SettingsFileName) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			text, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return []style.Source{{Path: path, Text: string(text)}}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// filterResults drops diagnostics below the severity threshold and, when
// rule IDs were requested explicitly, everything from other rules.
func filterResults(results []style.FileResult, ruleIDs []string, threshold style.Severity) []style.FileResult {
	requested := make(map[string]bool, len(ruleIDs))
	for _, id := range ruleIDs {
		requested[id] = true
	}

	out := make([]style.FileResult, 0, len(results))
	for _, res := range results {
		var kept []style.Diagnostic
		for _, d := range res.Diagnostics {
			if !d.Severity.AtLeast(threshold) {
				continue
			}
			if len(requested) > 0 && !requested[d.RuleID] {
				continue
			}
			kept = append(kept, d)
		}
		out = append(out, style.FileResult{FilePath: res.FilePath, Diagnostics: kept})
	}
	return out
}

// renderCheckResults writes the diagnostics in the renderer's mode and
// returns how many were reported.
func renderCheckResults(r *output.Renderer, results []style.FileResult) (int, error) {
	total := 0
	for _, res := range results {
		total += len(res.Diagnostics)
	}

	if r.EffectiveMode() == output.ModeJSON {
		type jsonDiag struct {
			RuleID   string `json:"ruleId"`
			Severity string `json:"severity"`
			Message  string `json:"message"`
			FilePath string `json:"filePath"`
			Start    int    `json:"start"`
			End      int    `json:"end"`
		}
		type jsonFile struct {
			FilePath    string     `json:"filePath"`
			Diagnostics []jsonDiag `json:"diagnostics"`
		}
		files := make([]jsonFile, 0, len(results))
		for _, res := range results {
			jf := jsonFile{FilePath: res.FilePath, Diagnostics: []jsonDiag{}}
			for _, d := range res.Diagnostics {
				jf.Diagnostics = append(jf.Diagnostics, jsonDiag{
					RuleID:   d.RuleID,
					Severity: d.Severity.String(),
					Message:  d.Message,
					FilePath: d.FilePath,
					Start:    d.Span.Start,
					End:      d.Span.End,
				})
			}
			files = append(files, jf)
		}
		return total, r.JSON(files)
	}

	if total == 0 {
		r.Println("No style issues found.")
		return 0, nil
	}

	styled := r.EffectiveMode() == output.ModeText
	tw := r.NewTable()
	tw.AppendHeader(table.Row{"File", "Span", "Severity", "Rule", "Message"})
	for _, res := range results {
		for _, d := range res.Diagnostics {
			sev := d.Severity.String()
			ruleID := d.RuleID
			path := d.FilePath
			if styled {
				sev = output.SeverityStyle(sev).Render(sev)
				ruleID = output.StyleRuleID.Render(ruleID)
				path = output.StylePath.Render(path)
			}
			tw.AppendRow(table.Row{
				path,
				fmt.Sprintf("%d..%d", d.Span.Start, d.Span.End),
				sev,
				ruleID,
				d.Message,
			})
		}
	}
	r.RenderTable(tw)
	r.Printf("\n%d issue(s) found.\n", total)
	return total, nil
}

// runCheckWatch re-runs the analysis whenever tree dumps or settings change.
// Findings do not fail the command in watch mode; the loop ends with the
// command context.
func runCheckWatch(cmd *cobra.Command, cmdCtx *CommandContext, opts *CheckOptions, paths []string, threshold style.Severity) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirs(watcher, paths); err != nil {
		return err
	}

	logger := config.GetLogger(cmd.Context())
	run := func() {
		if _, err := runCheckOnce(cmd.Context(), cmdCtx, opts, paths, threshold); err != nil {
			logger.Error("check failed", "error", err)
		}
	}
	run()

	// Debounce bursts of filesystem events into one re-run.
	const settle = 200 * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-pending:
			run()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(settle, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}

func watchDirs(watcher *fsnotify.Watcher, paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			p = filepath.Dir(p)
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasSuffix(event.Name, treeDumpSuffix) || strings.EqualFold(name, style.SettingsFileName)
}
