package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postline", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 120, cfg.Auth.TokenExpireMinute)
	assert.NotEqual(t, cfg.Auth.SessionSecret, cfg.Auth.ResetSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_SESSION_SECRET", "session-abc")
	t.Setenv("AUTH_RESET_SECRET", "reset-abc")
	t.Setenv("MYSQL_DB", "postline_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "session-abc", cfg.Auth.SessionSecret)
	assert.Equal(t, "reset-abc", cfg.Auth.ResetSecret)
	assert.Contains(t, cfg.MySQLDSN(), "postline_test")
}

func TestEnvOverrideIgnoresBadInt(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
}
