package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "BODY_LIMIT", "READ_TIMEOUT", "WRITE_TIMEOUT", "CORS_ALLOW_ORIGINS",
		"GEMINI_API_KEY", "GEMINI_API_KEY_FILE", "GEMINI_MODEL", "GEMINI_TEMPERATURE",
		"GEMINI_MAX_LOG_LENGTH", "LOG_JSON", "LOG_DEBUG", "PORTFOLIO_FILE", "MAX_RESUME_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.2, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, 200, cfg.Gemini.MaxLogLength)
	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.Portfolio.File)
	assert.Equal(t, int64(2*1024*1024), cfg.Portfolio.MaxResumeSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_RESUME_SIZE", "1024")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, int64(1024), cfg.Portfolio.MaxResumeSize)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("BODY_LIMIT", "lots")
	t.Setenv("WRITE_TIMEOUT", "soon")
	t.Setenv("LOG_DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 4*1024*1024, cfg.Server.BodyLimit)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Log.Debug)
}
