// Package config loads process configuration from the environment once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/j3-2000/routein-yoga-backend/internal/platform/token"
)

// Config holds everything the process reads from its environment.
type Config struct {
	// Env is "production" or anything else for development.
	Env  string
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWTSecret signs every issued token. Required in production; a fallback
	// default is a configuration error, not an acceptable production value.
	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr     string
	RedisPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	// NotifyFrom and NotifyTo are the fixed sender and admin recipient for
	// enquiry and booking notifications.
	NotifyFrom string
	NotifyTo   string
}

// ErrMissingJWTSecret is returned when production mode starts without a signing secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Load reads the environment into a Config. A .env file is honored in
// development and silently skipped when absent.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "routein"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  token.DefaultTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenv("SMTP_PORT", "465"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		NotifyFrom:   os.Getenv("NOTIFY_FROM"),
		NotifyTo:     os.Getenv("NOTIFY_TO"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = parsed
	}

	if cfg.Production() && cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

// Production reports whether the process runs in production mode.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// SMTPConfigured reports whether outbound mail can actually be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.NotifyTo != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
