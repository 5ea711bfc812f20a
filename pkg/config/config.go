package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	DataDir  string

	// Database
	DatabaseURL string

	// Redis (optional policy cache / feature-config source)
	RedisURL string

	// RabbitMQ (optional analytics and billing event bus)
	RabbitMQURL string

	// Billing
	SubscriptionPlan  string
	SubscriptionPrice float64

	// Content generator
	GeneratorURL     string
	GeneratorTimeout time.Duration

	// Personalization
	RecentlyViewedLimit int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DataDir:  getEnv("CREATORHUB_DATA_DIR", defaultDataDir()),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		SubscriptionPlan:  getEnv("SUBSCRIPTION_PLAN", "premium"),
		SubscriptionPrice: getFloatEnv("SUBSCRIPTION_PRICE", 99),

		GeneratorURL:     getEnv("GENERATOR_URL", ""),
		GeneratorTimeout: getDurationEnv("GENERATOR_TIMEOUT", 15*time.Second),

		RecentlyViewedLimit: getIntEnv("RECENTLY_VIEWED_LIMIT", 10),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".creatorhub"
	}
	return filepath.Join(home, ".creatorhub")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
