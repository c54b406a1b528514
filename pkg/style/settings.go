package style

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"sync"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// SettingsFileName is the recognized name of the settings artifact. The
// resolver matches it against source file names case-insensitively.
const SettingsFileName = "stylecop.json"

// Source is one non-code configuration artifact supplied by the host, with
// its full text already in memory. The engine performs no file I/O to obtain
// settings.
type Source struct {
	Path string
	Text string
}

// Settings is the resolved style configuration produced from one settings
// artifact. A Settings value is immutable after creation and safe for
// concurrent use; its exclusion verdict cache is the only interior mutable
// state and is guarded internally.
type Settings struct {
	// ExcludedFiles lists files excluded from analysis, each absolute or
	// relative to the settings artifact's directory.
	ExcludedFiles []string

	// ExcludedFileFilters lists patterns matched case-insensitively
	// against a file's full normalized path.
	ExcludedFileFilters []string

	// baseDir is the directory containing the settings artifact. Empty
	// for default settings.
	baseDir string

	// filters holds the compiled exclusion patterns. Entries that fail
	// to compile are dropped at construction time (fail-soft).
	filters []*regexp.Regexp

	mu       sync.Mutex
	verdicts map[string]bool
}

// settingsSection is the recognized subset of the settings document.
// Unrecognized fields are ignored.
type settingsSection struct {
	ExcludedFiles       []string `koanf:"excludedFiles"`
	ExcludedFileFilters []string `koanf:"excludedFileFilters"`
}

// DefaultSettings returns the permissive configuration used when no
// settings artifact is present or, in lenient mode, when one fails to parse.
func DefaultSettings() *Settings {
	return newSettings("", settingsSection{}, nil)
}

// newSettings builds an immutable Settings, compiling exclusion patterns.
// An invalid pattern disables only that entry; the event is logged once at
// construction time.
func newSettings(baseDir string, sec settingsSection, logger *slog.Logger) *Settings {
	s := &Settings{
		ExcludedFiles:       sec.ExcludedFiles,
		ExcludedFileFilters: sec.ExcludedFileFilters,
		baseDir:             baseDir,
		verdicts:            make(map[string]bool),
	}
	for _, pat := range sec.ExcludedFileFilters {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			if logger != nil {
				logger.Warn("disabling invalid exclusion filter",
					"pattern", pat, "error", err)
			}
			continue
		}
		s.filters = append(s.filters, re)
	}
	return s
}

// parseSettings parses a settings artifact's text as JSON and extracts the
// recognized fields. The caller decides how parse failures are handled.
func parseSettings(src Source, logger *slog.Logger) (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(src.Text)), kjson.Parser()); err != nil {
		return nil, err
	}

	var sec settingsSection
	if err := k.Unmarshal("settings", &sec); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(absolutePath(src.Path))
	return newSettings(baseDir, sec, logger), nil
}

// absolutePath makes p absolute, falling back to a cleaned form when the
// working directory is unavailable.
func absolutePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
