package style

import (
	"path/filepath"
	"strings"
)

// IsExcluded reports whether the file at path is excluded from analysis by
// these settings.
//
// The path is first normalized to a canonical absolute slash-separated form.
// The file is excluded when either an ExcludedFiles entry names the same
// file (file-name comparison is case-insensitive, and the entry, resolved
// against the settings artifact's directory, must normalize to the same
// canonical path), or any compiled ExcludedFileFilters pattern matches the
// canonical full path. Verdicts are memoized per canonical path for the
// lifetime of the Settings instance; once computed, a verdict never changes.
func (s *Settings) IsExcluded(path string) bool {
	canon := s.canonicalPath(path)

	s.mu.Lock()
	if verdict, ok := s.verdicts[canon]; ok {
		s.mu.Unlock()
		return verdict
	}
	s.mu.Unlock()

	// The match itself is pure; racing computations reach the same
	// verdict, so the first insert is simply confirmed by later ones.
	verdict := s.matchExcludedFiles(canon) || s.matchFilters(canon)

	s.mu.Lock()
	s.verdicts[canon] = verdict
	s.mu.Unlock()
	return verdict
}

// canonicalPath normalizes a candidate file path: relative segments are
// resolved, the path is absolutized (against the artifact directory when one
// is known), and separators become forward slashes.
func (s *Settings) canonicalPath(path string) string {
	p := filepath.Clean(path)
	if !filepath.IsAbs(p) {
		if s.baseDir != "" {
			p = filepath.Join(s.baseDir, p)
		} else {
			p = absolutePath(p)
		}
	}
	return filepath.ToSlash(p)
}

func (s *Settings) matchExcludedFiles(canon string) bool {
	name := pathBase(canon)
	for _, entry := range s.ExcludedFiles {
		entryName := pathBase(filepath.ToSlash(entry))
		if !strings.EqualFold(entryName, name) {
			continue
		}
		if strings.EqualFold(s.canonicalPath(entry), canon) {
			return true
		}
	}
	return false
}

func (s *Settings) matchFilters(canon string) bool {
	for _, re := range s.filters {
		if re.MatchString(canon) {
			return true
		}
	}
	return false
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
