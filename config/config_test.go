package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("FORM_TTL", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	LoadConfig()

	assert.Equal(t, "0.0.0.0:3000", AppAddr)
	assert.Equal(t, "*", AllowOrigins)
	assert.Equal(t, 30*time.Minute, FormTTL)
	assert.Contains(t, FooterHTML, `href="/login"`)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ADDR", "127.0.0.1:8080")
	t.Setenv("FORM_TTL", "5m")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://example.com")

	LoadConfig()

	assert.Equal(t, "127.0.0.1:8080", AppAddr)
	assert.Equal(t, "https://example.com", AllowOrigins)
	assert.Equal(t, 5*time.Minute, FormTTL)
}

func TestInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("FORM_TTL", "soon")
	assert.Equal(t, 30*time.Minute, getDuration("FORM_TTL", 30*time.Minute))

	t.Setenv("FORM_TTL", "-1m")
	assert.Equal(t, 30*time.Minute, getDuration("FORM_TTL", 30*time.Minute))
}
