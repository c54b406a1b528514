package style

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// ConfigurationError reports an unusable settings artifact. It is returned
// only by resolvers operating in strict mode; in the default lenient mode a
// malformed artifact is replaced by DefaultSettings.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("settings artifact %s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Resolver resolves and caches style settings per configuration identity
// (the absolute path of the settings artifact). One resolver is shared by
// all workers of an analysis session: the first caller for a given identity
// parses the artifact, every later caller gets the cached Settings.
type Resolver struct {
	mu    sync.Mutex
	cache map[string]*Settings

	// defaults is the single permissive configuration handed out when no
	// artifact matches. Sharing one instance keeps its exclusion cache
	// warm across files.
	defaults *Settings

	strict bool
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrictSettings makes parse failures surface as *ConfigurationError
// instead of being replaced by default settings.
func WithStrictSettings() ResolverOption {
	return func(r *Resolver) { r.strict = true }
}

// WithResolverLogger sets the logger used for settings events.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a resolver with an empty cache.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:    make(map[string]*Settings),
		defaults: DefaultSettings(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the style settings for the given configuration sources.
//
// The source whose file name equals SettingsFileName (case-insensitive) is
// selected; all others are ignored. With no match the shared default
// settings are returned. Results are memoized per absolute artifact path:
// the parse runs at most once per identity for the life of the resolver,
// with the read-check-insert sequence guarded by one mutex so concurrent
// callers observe exactly one Settings instance per identity.
func (r *Resolver) Resolve(ctx context.Context, sources []Source) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, ok := selectSource(sources)
	if !ok {
		return r.defaults, nil
	}
	key := absolutePath(src.Path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}

	settings, err := parseSettings(Source{Path: key, Text: src.Text}, r.logger)
	if err != nil {
		if r.strict {
			return nil, &ConfigurationError{Path: key, Err: err}
		}
		r.logger.Warn("malformed settings artifact, using defaults",
			"path", key, "error", err)
		settings = DefaultSettings()
	}

	r.cache[key] = settings
	return settings, nil
}

// selectSource picks the settings artifact from the supplied sources.
func selectSource(sources []Source) (Source, bool) {
	for _, src := range sources {
		if strings.EqualFold(filepath.Base(src.Path), SettingsFileName) {
			return src, true
		}
	}
	return Source{}, false
}
