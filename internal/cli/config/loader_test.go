package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, ".", cfg.ProjectDir)
	assert.Equal(t, "warning", cfg.Severity)
	assert.False(t, cfg.Verbose)
	assert.Zero(t, cfg.Jobs)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(
		"severity: error\nverbose: true\ndisabled_rules:\n  - LA03\n"), 0o644))
	t.Chdir(dir)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "error", cfg.Severity)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"LA03"}, cfg.DisabledRules)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(
		"severity: error\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("STYLEWRIGHT_SEVERITY", "hint")

	cfg, _, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "hint", cfg.Severity)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STYLEWRIGHT_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "", "")
	flags.Int("jobs", 0, "")
	require.NoError(t, flags.Parse([]string{"--format=json", "--jobs=4"}))

	cfg, _, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 4, cfg.Jobs)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project_dir: /proj\n"), 0o644))

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "/proj", cfg.ProjectDir)
}
