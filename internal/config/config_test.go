package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkendall/sysdash/internal/errors"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1000, cfg.Dashboard.RefreshRateMS)
	assert.Equal(t, 150, cfg.Dashboard.TabDebounceMS)
	assert.Equal(t, 60, cfg.System.CPUHistoryLength)
	assert.Equal(t, 60, cfg.System.MemoryHistoryLength)
	assert.Equal(t, 20, cfg.System.MaxProcessesDisplayed)
	assert.True(t, cfg.System.EnableProcessMonitoring)
	assert.True(t, cfg.Display.ShowProcessList)

	assert.Equal(t, time.Second, cfg.RefreshInterval())
	assert.Equal(t, 150*time.Millisecond, cfg.TabDebounce())
	require.NoError(t, Validate(cfg))
}

func TestLoadExplicitMissingPathIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	// Run from a directory without a sysdash.yaml
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	t.Setenv("HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSparseFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("dashboard:\n  refresh_rate_ms: 2000\nsystem:\n  max_processes_displayed: 5\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Dashboard.RefreshRateMS)
	assert.Equal(t, 5, cfg.System.MaxProcessesDisplayed)
	// Untouched fields keep their defaults
	assert.Equal(t, DefaultHistoryLength, cfg.System.CPUHistoryLength)
	assert.Equal(t, DefaultTitle, cfg.Dashboard.Title)
}

func TestLoadMalformedFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard: [not: a: map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero refresh", func(c *Config) { c.Dashboard.RefreshRateMS = 0 }},
		{"negative refresh", func(c *Config) { c.Dashboard.RefreshRateMS = -1 }},
		{"zero frame rate", func(c *Config) { c.Dashboard.FrameRateMS = 0 }},
		{"negative debounce", func(c *Config) { c.Dashboard.TabDebounceMS = -10 }},
		{"negative cpu history", func(c *Config) { c.System.CPUHistoryLength = -1 }},
		{"negative memory history", func(c *Config) { c.System.MemoryHistoryLength = -1 }},
		{"negative process cap", func(c *Config) { c.System.MaxProcessesDisplayed = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Default()
	want.Dashboard.Title = "test dash"
	want.System.CPUHistoryLength = 120
	require.NoError(t, Write(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.RefreshRateMS = 0

	err := Write(cfg, filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
}
