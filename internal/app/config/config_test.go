package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.Production())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "a-strong-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, "a-strong-secret", cfg.JWTSecret)
}

func TestLoad_TokenTTLOverride(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.TokenTTL)

	t.Setenv("TOKEN_TTL", "not-a-duration")
	_, err = Load()
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.local",
		DBPort:     "5432",
		DBUser:     "yoga",
		DBPassword: "secret",
		DBName:     "routein",
		DBSSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.local port=5432 user=yoga password=secret dbname=routein sslmode=disable",
		cfg.DSN())
}

func TestConfig_SMTPConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.SMTPConfigured())

	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPUser = "mailer@example.com"
	cfg.NotifyTo = "admin@example.com"
	assert.True(t, cfg.SMTPConfigured())
}
