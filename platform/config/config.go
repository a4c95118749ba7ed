// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// EngineConfig provides settings for the lead consolidation engine.
type EngineConfig interface {
	GetExpiringHorizonDays() int
	GetLeaderboardCacheTTL() time.Duration
}

// SchedulerConfig provides settings for the background job scheduler.
type SchedulerConfig interface {
	GetRedisURL() string
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// EmailConfig provides settings for reminder email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string
	RedisURL    string

	JWTAccessSecret string
	AccessTokenTTL  time.Duration

	CORSAllowAll bool
	CORSOrigins  []string

	ExpiringHorizonDays int
	LeaderboardCacheTTL time.Duration

	AsynqQueueName   string
	AsynqConcurrency int

	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
}

// Load reads configuration from the environment, with .env as a fallback for
// local development. Missing required values produce an error, not a default.
func Load() (*Config, error) {
	// Ignore error: .env is optional outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		JWTAccessSecret: os.Getenv("JWT_ACCESS_SECRET"),
		AccessTokenTTL:  getDurationEnv("ACCESS_TOKEN_TTL", 15*time.Minute),

		CORSAllowAll: getBoolEnv("CORS_ALLOW_ALL", false),
		CORSOrigins:  getListEnv("CORS_ORIGINS"),

		ExpiringHorizonDays: getIntEnv("EXPIRING_HORIZON_DAYS", 30),
		LeaderboardCacheTTL: getDurationEnv("LEADERBOARD_CACHE_TTL", 30*time.Second),

		AsynqQueueName:   getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency: getIntEnv("ASYNQ_CONCURRENCY", 10),

		EmailEnabled:     getBoolEnv("EMAIL_ENABLED", false),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getIntEnv("SMTP_PORT", 587),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Back Office"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.ExpiringHorizonDays < 1 {
		return nil, fmt.Errorf("EXPIRING_HORIZON_DAYS must be positive")
	}
	if cfg.EmailEnabled && cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is required when EMAIL_ENABLED is true")
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetDatabaseURL() string                { return c.DatabaseURL }
func (c *Config) GetJWTAccessSecret() string            { return c.JWTAccessSecret }
func (c *Config) GetAccessTokenTTL() time.Duration      { return c.AccessTokenTTL }
func (c *Config) GetHTTPAddr() string                   { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool                 { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string              { return c.CORSOrigins }
func (c *Config) GetExpiringHorizonDays() int           { return c.ExpiringHorizonDays }
func (c *Config) GetLeaderboardCacheTTL() time.Duration { return c.LeaderboardCacheTTL }
func (c *Config) GetRedisURL() string                   { return c.RedisURL }
func (c *Config) GetAsynqQueueName() string             { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int              { return c.AsynqConcurrency }
func (c *Config) GetEmailEnabled() bool                 { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string                   { return c.SMTPHost }
func (c *Config) GetSMTPPort() int                      { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string               { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string               { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string              { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string           { return c.EmailFromAddress }

// =============================================================================
// Helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
