package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis cache for CRM lookups (optional)
	RedisURL     string
	LookupTTLMin int // cache TTL in minutes

	// CRM directory
	CRMBaseURL  string
	CRMAPIToken string

	// Chat notifications
	NotifyWebhookURL string

	// Optional reasoning service
	OpenAIAPIKey string
	OpenAIModel  string

	// Activity log retention
	ActivityRetentionDays int

	// Service identity reported by the health endpoint
	ServiceName    string
	ServiceVersion string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/leadline?sslmode=disable"),

		RedisURL:     getEnv("REDIS_URL", ""),
		LookupTTLMin: getEnvInt("LOOKUP_CACHE_TTL_MINUTES", 15),

		CRMBaseURL:  getEnv("CRM_BASE_URL", ""),
		CRMAPIToken: getEnv("CRM_API_TOKEN", ""),

		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		ActivityRetentionDays: getEnvInt("ACTIVITY_RETENTION_DAYS", 90),

		ServiceName:    getEnv("SERVICE_NAME", "Leadline Voice Qualification"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsCRMEnabled returns true if a CRM directory endpoint is configured.
func (c *Config) IsCRMEnabled() bool {
	return c.CRMBaseURL != ""
}

// IsNotifyEnabled returns true if a chat webhook is configured.
func (c *Config) IsNotifyEnabled() bool {
	return c.NotifyWebhookURL != ""
}

// IsReasoningEnabled returns true if the optional reasoning service is configured.
func (c *Config) IsReasoningEnabled() bool {
	return c.OpenAIAPIKey != ""
}
