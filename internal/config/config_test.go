package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-slideshow/internal/sequence"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Len(t, cfg.Inputs, 5)
	assert.Equal(t, "data/a_example.txt", cfg.Inputs[0])
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, sequence.DefaultWindows(), cfg.Sequence.Windows())
	assert.Equal(t, 2000, cfg.Sequence.ProgressEvery)
	assert.Equal(t, "txt", cfg.Output.InputMarker)
	assert.Equal(t, "result", cfg.Output.ResultMarker)
	assert.Empty(t, cfg.Output.Summary)
	assert.False(t, cfg.Tags.Stem)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Inputs, cfg.Inputs)
	assert.Equal(t, want.Workers, cfg.Workers)
	assert.Equal(t, want.Sequence, cfg.Sequence)
	assert.Equal(t, want.Output, cfg.Output)
	assert.Equal(t, want.Tags, cfg.Tags)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
inputs:
  - in/one.txt
  - in/two.txt
workers: 2
sequence:
  horizontal_window: 500
  vertical_inner_window: 4
output:
  result_marker: out
tags:
  stem: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("SLIDESHOW_VERTICAL_INNER_WINDOW", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"in/one.txt", "in/two.txt"}, cfg.Inputs)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, sequence.Windows{Horizontal: 500, VerticalOuter: 1000, VerticalInner: 7}, cfg.Sequence.Windows())
	assert.Equal(t, "txt", cfg.Output.InputMarker)
	assert.Equal(t, "out", cfg.Output.ResultMarker)
	assert.True(t, cfg.Tags.Stem)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "elsewhere.yml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o644))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_InputsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("SLIDESHOW_INPUTS", " a.txt, b.txt ,,c.txt")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, cfg.Inputs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sequence:\n  horizontal_window: 0\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no inputs", func(c *Config) { c.Inputs = nil }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"zero horizontal window", func(c *Config) { c.Sequence.HorizontalWindow = 0 }},
		{"unpairable vertical windows", func(c *Config) {
			c.Sequence.VerticalOuterWindow = 1
			c.Sequence.VerticalInnerWindow = 1
		}},
		{"progress every", func(c *Config) { c.Sequence.ProgressEvery = 1 }},
		{"empty marker", func(c *Config) { c.Output.InputMarker = "" }},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// chdir is a Go 1.21 stand-in for testing.T.Chdir (added in Go 1.24): it
// changes the working directory and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
