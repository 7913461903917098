package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "ALLOWED_ORIGINS", "RATE_LIMIT_WINDOW", "SESSION_COOKIES", "AMQP_URL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.SessionCookies)
	assert.Empty(t, cfg.AMQPURL)
	assert.False(t, cfg.Production())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("SESSION_COOKIES", "false")
	t.Setenv("OTEL_SAMPLER_RATIO", "0.25")

	cfg := Load()
	assert.True(t, cfg.Production())
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.SessionCookies)
	assert.Equal(t, 0.25, cfg.OTelSampleRatio)
}

func TestLoadFallsBackOnGarbage(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("RATE_LIMIT_WINDOW", "-5s")
	t.Setenv("SESSION_COOKIES", "maybe")

	cfg := Load()
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.SessionCookies)
}
