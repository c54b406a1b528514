package style_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylewright-labs/stylewright/pkg/style"
)

// resolveSettings builds Settings through the resolver, the same way the
// dispatcher obtains them.
func resolveSettings(t *testing.T, artifactPath, text string) *style.Settings {
	t.Helper()
	r := style.NewResolver()
	settings, err := r.Resolve(context.Background(), []style.Source{{Path: artifactPath, Text: text}})
	require.NoError(t, err)
	return settings
}

func TestIsExcludedByFileName(t *testing.T) {
	settings := resolveSettings(t, "/proj/stylecop.json", `{
		"settings": {"excludedFiles": ["Generated.cs"]}
	}`)

	// Name and resolved path both match.
	assert.True(t, settings.IsExcluded("/proj/Generated.cs"))

	// Name matches but the entry resolves to a different path.
	assert.False(t, settings.IsExcluded("/proj/sub/Generated.cs"))

	assert.False(t, settings.IsExcluded("/proj/Program.cs"))
}

func TestIsExcludedRelativeEntry(t *testing.T) {
	settings := resolveSettings(t, "/proj/stylecop.json", `{
		"settings": {"excludedFiles": ["sub/Generated.cs"]}
	}`)

	assert.True(t, settings.IsExcluded("/proj/sub/Generated.cs"))
	assert.False(t, settings.IsExcluded("/proj/Generated.cs"))
}

func TestIsExcludedNormalizesPaths(t *testing.T) {
	settings := resolveSettings(t, "/proj/stylecop.json", `{
		"settings": {"excludedFiles": ["Generated.cs"]}
	}`)

	// Filesystem-equivalent spellings receive the same verdict.
	assert.True(t, settings.IsExcluded("/proj/./Generated.cs"))
	assert.True(t, settings.IsExcluded("/proj/sub/../Generated.cs"))
	assert.True(t, settings.IsExcluded("/proj/GENERATED.CS"))
}

func TestIsExcludedByFilter(t *testing.T) {
	settings := resolveSettings(t, "/proj/stylecop.json", `{
		"settings": {"excludedFileFilters": ["\\.designer\\.cs$"]}
	}`)

	assert.True(t, settings.IsExcluded("/proj/Form1.Designer.cs"))
	assert.True(t, settings.IsExcluded("/proj/deep/nested/GRID.DESIGNER.CS"))
	assert.False(t, settings.IsExcluded("/proj/Form1.cs"))
}

func TestInvalidFilterDisablesOnlyThatEntry(t *testing.T) {
	settings := resolveSettings(t, "/proj/stylecop.json", `{
		"settings": {"excludedFileFilters": ["[unclosed", "\\.g\\.cs$"]}
	}`)

	// The valid pattern still applies; the broken one is dropped.
	assert.True(t, settings.IsExcluded("/proj/Model.g.cs"))
	assert.False(t, settings.IsExcluded("/proj/Model.cs"))
}

func TestIsExcludedMemoized(t *testing.T) {
	settings := resolveSettings(t, "/proj/stylecop.json", `{
		"settings": {"excludedFileFilters": ["generated"]}
	}`)

	// Repeated queries for the same path return the identical verdict.
	for range 3 {
		assert.True(t, settings.IsExcluded("/proj/AutoGenerated.cs"))
		assert.False(t, settings.IsExcluded("/proj/Handwritten.cs"))
	}
}

func TestDefaultSettingsExcludeNothing(t *testing.T) {
	settings := style.DefaultSettings()
	assert.False(t, settings.IsExcluded("/proj/Generated.cs"))
	assert.False(t, settings.IsExcluded("anything"))
}
