package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "cabtour", cfg.DatabaseName)
	assert.Equal(t, 168*time.Hour, cfg.CustomerTokenTTL)
	assert.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, -50.0, cfg.IncrementMinPercent)
	assert.Equal(t, 200.0, cfg.IncrementMaxPercent)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	yaml := []byte("APP_PORT: \"9090\"\nJWT_SECRET: file-secret\nINCREMENT_MAX_PERCENT: 150\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("INCREMENT_MAX_PERCENT", "120")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "file-secret", cfg.AdminJWTSecret, "admin secret falls back to the customer secret")
	assert.Equal(t, 120.0, cfg.IncrementMaxPercent)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
