package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srgjo27/movie_ticket/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.SeatRows)
	assert.Equal(t, 10, cfg.SeatCols)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin", cfg.AdminPassword)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEAT_ROWS", "8")
	t.Setenv("SEED_CATALOG", "false")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.SeatRows)
	assert.False(t, cfg.SeedCatalog)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_USERNAME=manager\nSEAT_COLS=12\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("ADMIN_USERNAME")
		os.Unsetenv("SEAT_COLS")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "manager", cfg.AdminUsername)
	assert.Equal(t, 12, cfg.SeatCols)
}

func TestLoad_RejectsEmptyGrid(t *testing.T) {
	t.Setenv("SEAT_COLS", "0")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedValue(t *testing.T) {
	t.Setenv("SEAT_ROWS", "five")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_USERNAME='unterminated\n"), 0o600))

	_, err := config.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.Load: read")
}

func TestLoad_UnreadableEnvFile(t *testing.T) {
	_, err := config.Load(t.TempDir())

	assert.Error(t, err)
}
