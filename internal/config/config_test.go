package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_MODE", "APP_HOST", "APP_PORT", "ENV", "LOG_LEVEL",
		"PW_HEADLESS", "PW_TIMEOUT_SEC", "PW_DISMISS_POPUPS",
		"TREE_MAX_CHARS", "TREE_MAX_DEPTH", "TREE_EXCLUDED_TAGS", "TREE_TRUNCATE", "TREE_SANITIZE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cli", cfg.App.Mode)
	assert.Equal(t, "127.0.0.1", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "dev", cfg.Logger.Env)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Browser.Headless)
	assert.False(t, cfg.Browser.DismissPopups)
	assert.Equal(t, 30*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, 100000, cfg.Tree.MaxChars)
	assert.Zero(t, cfg.Tree.MaxDepth)
	assert.Empty(t, cfg.Tree.ExcludedTags)
	assert.True(t, cfg.Tree.Truncate)
	assert.False(t, cfg.Tree.Sanitize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_MODE", "server")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PW_HEADLESS", "false")
	t.Setenv("PW_TIMEOUT_SEC", "5")
	t.Setenv("PW_DISMISS_POPUPS", "yes")
	t.Setenv("TREE_MAX_CHARS", "500")
	t.Setenv("TREE_MAX_DEPTH", "12")
	t.Setenv("TREE_EXCLUDED_TAGS", " Script, svg ,,iframe")
	t.Setenv("TREE_TRUNCATE", "0")
	t.Setenv("TREE_SANITIZE", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "server", cfg.App.Mode)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.Browser.Headless)
	assert.True(t, cfg.Browser.DismissPopups)
	assert.Equal(t, 5*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, 500, cfg.Tree.MaxChars)
	assert.Equal(t, 12, cfg.Tree.MaxDepth)
	assert.Equal(t, []string{"script", "svg", "iframe"}, cfg.Tree.ExcludedTags)
	assert.False(t, cfg.Tree.Truncate)
	assert.True(t, cfg.Tree.Sanitize)
}

func TestEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 7, envInt("X_INT", 7))
	assert.True(t, envBool("X_BOOL", true))
	assert.Equal(t, "dflt", env("X_MISSING", "dflt"))
}
