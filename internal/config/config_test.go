package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, "08:00", cfg.DayStart)

	// The file was created on first load.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nweek_start: sunday\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "sunday", cfg.WeekStart)
	// Missing keys keep their defaults.
	assert.Equal(t, "08:00", cfg.DayStart)
	assert.Equal(t, "18:00", cfg.DayEnd)
}

func TestLoadInvalidWeekStartFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week_start: friday\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "monday", cfg.WeekStart)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Theme = "dark"
	cfg.DatabasePath = "/tmp/db"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "/tmp/db", got.DatabasePath)
}

func TestWeekdayOrder(t *testing.T) {
	monday := Config{WeekStart: "monday"}
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 0}, monday.WeekdayOrder())

	sunday := Config{WeekStart: "sunday"}
	assert.Equal(t, [7]int{0, 1, 2, 3, 4, 5, 6}, sunday.WeekdayOrder())
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv("ORARIODOC_CONFIG", "/tmp/override.yaml")
	assert.Equal(t, "/tmp/override.yaml", Path())

	t.Setenv("ORARIODOC_CONFIG", "")
	assert.Equal(t, DefaultPath(), Path())
}
