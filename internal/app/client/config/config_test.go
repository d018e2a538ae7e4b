package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "dayadmin.db"), cfg.DataPath)
	assert.Equal(t, filepath.Join(dir, "session.key"), cfg.KeyPath)
	assert.Equal(t, filepath.Join(dir, "token"), cfg.TokenPath)
	assert.Equal(t, "https://cervical.praispranav.com", cfg.Remote.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("TOKEN_PATH", filepath.Join(dir, "custom-token"))
	t.Setenv("API_BASE_URL", "http://localhost:9000/")
	t.Setenv("APP_ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "custom-token"), cfg.TokenPath)
	assert.Equal(t, "http://localhost:9000", cfg.Remote.BaseURL)
	assert.False(t, cfg.IsLocal())
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("EVENT_BATCH_POLICY", "random")

	assert.Panics(t, func() { MustLoad() })
}
