package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.SessionCookieSecure)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=9090\nSESSION_TTL=5m\nSESSION_COOKIE_SECURE=true\nRATE_LIMIT_RPS=7.5\nENV=production\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	// godotenv never overrides variables that are already set, so register
	// cleanups for the keys it will introduce.
	for _, key := range []string{"PORT", "SESSION_TTL", "SESSION_COOKIE_SECURE", "RATE_LIMIT_RPS", "ENV"} {
		key := key
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.SessionCookieSecure)
	assert.Equal(t, 7.5, cfg.RateLimitRPS)
	assert.False(t, cfg.IsDevelopment())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("SESSION_COOKIE_SECURE", "maybe")

	assert.Equal(t, time.Minute, getDurationEnv("SESSION_TTL", time.Minute))
	assert.Equal(t, 3, getIntEnv("RATE_LIMIT_BURST", 3))
	assert.True(t, getBoolEnv("SESSION_COOKIE_SECURE", true))
}

func TestValidateRepairsSessionTTL(t *testing.T) {
	cfg := &Config{SessionSecret: "s", SessionTTL: -time.Second, RateLimitBurst: 0}
	cfg.Validate()

	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 1, cfg.RateLimitBurst)
}
