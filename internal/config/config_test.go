package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "DB_PATH", "SESSION_SECRET", "STATIC_DIR",
		"TEMPLATES_GLOB", "REDIS_ADDR", "REDIS_PASS", "REDIS_DB", "IS_PROD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "db.sqlite", cfg.DBPath)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "static/backgrounds", cfg.BackgroundsDir)
	assert.Equal(t, "web/templates/*.html", cfg.TemplatesGlob)
	// An unset secret falls back to the development secret, never to ""
	assert.Equal(t, DevSessionSecret, cfg.SessionSecret)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/test.sqlite")
	t.Setenv("SESSION_SECRET", "real-secret")
	t.Setenv("STATIC_DIR", "assets")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "/tmp/test.sqlite", cfg.DBPath)
	assert.Equal(t, "real-secret", cfg.SessionSecret)
	assert.Equal(t, "assets", cfg.StaticDir)
	assert.Equal(t, "assets/backgrounds", cfg.BackgroundsDir)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
}
