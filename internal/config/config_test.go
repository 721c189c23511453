package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "TOKEN_TTL", "REQUIRE_AUTH", "TIMEZONE", "REDIS_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.False(t, cfg.RequireAuth)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 5, cfg.AuthRateRPS)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("JWT_SECRET", "s3cret-for-tests")
	t.Setenv("TIMEZONE", "America/Chicago")
	t.Setenv("AUTH_RATE_LIMIT_BURST", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://pantry.example,http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.RequireAuth)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, 3, cfg.AuthRateBurst)
	assert.Equal(t, []string{"https://pantry.example", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		"TOKEN_TTL":           "tomorrow",
		"REQUIRE_AUTH":        "maybe",
		"AUTH_RATE_LIMIT_RPS": "fast",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadRequireAuthNeedsSecret(t *testing.T) {
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("REQUIRE_AUTH", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
}
