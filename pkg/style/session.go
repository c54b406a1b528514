package style

import (
	"context"
	"log/slog"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/stylewright-labs/stylewright/pkg/syntax"
)

// Options configures an analysis session.
type Options struct {
	// Sources are the non-code configuration artifacts available to the
	// analysis; the resolver selects the settings artifact among them.
	Sources []Source

	// Strict makes malformed settings artifacts fail the analysis
	// instead of falling back to defaults.
	Strict bool

	// Config controls enabled rules and severity overrides.
	Config *RunConfig

	// Logger receives session events. Defaults to a discard logger.
	Logger *slog.Logger

	// Workers bounds concurrent tree analysis. Defaults to GOMAXPROCS.
	Workers int
}

// Session is one analysis run over a set of syntax trees. It owns every
// mutable cache involved (settings cache, exclusion verdicts, memoized kind
// sets): a session is created at analysis start, shared read-through by all
// workers, and discarded at the end.
type Session struct {
	id         string
	sources    []Source
	resolver   *Resolver
	dispatcher *Dispatcher
	config     *RunConfig
	rules      []RuleDef
	logger     *slog.Logger
	workers    int
}

// FileResult groups the diagnostics of one analyzed tree.
type FileResult struct {
	FilePath    string
	Diagnostics []Diagnostic
}

// NewSession creates a session over the rules registered at call time.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	resolverOpts := []ResolverOption{WithResolverLogger(logger)}
	if opts.Strict {
		resolverOpts = append(resolverOpts, WithStrictSettings())
	}
	resolver := NewResolver(resolverOpts...)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	id := uuid.NewString()
	return &Session{
		id:         id,
		sources:    opts.Sources,
		resolver:   resolver,
		dispatcher: NewDispatcher(resolver, logger),
		config:     opts.Config,
		rules:      All(),
		logger:     logger.With("session", id[:8]),
		workers:    workers,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Rules returns the rule table snapshot the session runs.
func (s *Session) Rules() []RuleDef {
	return s.rules
}

// Settings resolves the session's style settings. Mostly useful for tooling
// that wants to inspect the configuration the analysis will use.
func (s *Session) Settings(ctx context.Context) (*Settings, error) {
	return s.resolver.Resolve(ctx, s.sources)
}

// AnalyzeTree runs all enabled rules over one tree and returns its
// diagnostics, with severity overrides applied.
func (s *Session) AnalyzeTree(ctx context.Context, tree *syntax.Tree) ([]Diagnostic, error) {
	enabled := s.enabledRules()

	diags, err := s.dispatcher.DispatchTree(ctx, enabled, tree, s.sources)
	if err != nil {
		return nil, err
	}

	for i := range diags {
		diags[i].Severity = s.config.GetSeverity(diags[i].RuleID, diags[i].Severity)
	}

	s.logger.Debug("tree analyzed",
		"path", tree.FilePath, "diagnostics", len(diags))
	return diags, nil
}

// Analyze runs the session over many trees in parallel, one worker per tree
// up to the configured limit. Results are returned sorted by file path.
// Under cancellation the whole analysis aborts; no partial per-tree results
// are reported.
func (s *Session) Analyze(ctx context.Context, trees []*syntax.Tree) ([]FileResult, error) {
	results := make([]FileResult, len(trees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, tree := range trees {
		g.Go(func() error {
			diags, err := s.AnalyzeTree(gctx, tree)
			if err != nil {
				return err
			}
			results[i] = FileResult{FilePath: tree.FilePath, Diagnostics: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].FilePath < results[j].FilePath })
	return results, nil
}

func (s *Session) enabledRules() []RuleDef {
	enabled := make([]RuleDef, 0, len(s.rules))
	for _, rule := range s.rules {
		if s.config.IsDisabled(rule.ID) {
			continue
		}
		enabled = append(enabled, rule)
	}
	return enabled
}
