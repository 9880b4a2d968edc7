package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.ApiServicePort)
	assert.Equal(t, int64(43200), cfg.TokenExpiration)
	assert.False(t, cfg.AuthBearerPrefix)
	assert.Equal(t, int64(10), cfg.LoginAttemptLimit)
	assert.Equal(t, int64(900), cfg.LoginAttemptWindow)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_SERVICE_PORT", "9000")
	t.Setenv("POSTGRESQL_PORT", "15432")
	t.Setenv("JWT_SECRET", "super_secret")
	t.Setenv("TOKEN_EXPIRATION", "3600")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "rootpass")
	t.Setenv("AUTH_BEARER_PREFIX", "true")

	cfg := LoadConfig()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9000", cfg.ApiServicePort)
	assert.Equal(t, int64(15432), cfg.PostgreSQLPort)
	assert.Equal(t, "super_secret", cfg.JWTSecret)
	assert.Equal(t, int64(3600), cfg.TokenExpiration)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
	assert.Equal(t, "rootpass", cfg.AdminPassword)
	assert.True(t, cfg.AuthBearerPrefix)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRATION", "not-a-number")
	t.Setenv("AUTH_BEARER_PREFIX", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, int64(43200), cfg.TokenExpiration)
	assert.False(t, cfg.AuthBearerPrefix)
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, getLogLevel())
		})
	}
}
