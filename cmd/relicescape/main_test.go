package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg.Settings, "shipped settings match the defaults")
	require.NotNil(t, cfg.Tables)
	assert.NotEmpty(t, cfg.Tables.Items)
}

func TestLoadConfig_Directory(t *testing.T) {
	dir := t.TempDir()
	toml := "seed = 77\n[player]\nmax_health = 40\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(toml), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(77), cfg.Settings.Seed)
	assert.Equal(t, 40, cfg.Settings.Player.MaxHealth)
	assert.Equal(t, 150.0, cfg.Settings.Player.Speed)
	assert.NotEmpty(t, cfg.Tables.Shop, "tables fall back to the built-in copy")
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("[world]\ntile_size = 0\n"), 0o644))

	_, err := loadConfig(dir)
	assert.ErrorContains(t, err, "tile_size")
}

func TestPickSeed(t *testing.T) {
	assert.Equal(t, int64(5), pickSeed(5, 9))
	assert.Equal(t, int64(9), pickSeed(0, 9))
	assert.NotZero(t, pickSeed(0, 0))
}

func TestConfigSource(t *testing.T) {
	assert.Equal(t, "embedded", configSource(""))
	assert.Equal(t, "mods", configSource("mods"))
}
