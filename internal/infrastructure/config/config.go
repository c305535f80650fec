// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"rewardfare-service/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Metrics server
	MetricsPort  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL
	PostgresDSN string

	// MongoDB (optional run-report archive)
	MongoURI string
	MongoDB  string

	// Pipeline
	PricingBaseURL string
	Strategy       entity.Strategy
	RewardProgram  string
	CountryCode    string
	HTTPTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	strategy, err := parseStrategy(getEnv("PRICING_STRATEGY", "market"))
	if err != nil {
		return nil, err
	}

	postgresDSN := os.Getenv("POSTGRES_DSN")
	if postgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MetricsPort:  getEnv("METRICS_PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresDSN: postgresDSN,

		MongoURI: getEnv("MONGODB_DSN", ""),
		MongoDB:  getEnv("MONGO_DB", "rewardfare"),

		PricingBaseURL: getEnv("PRICING_BASE_URL", "https://api.qantas.com"),
		Strategy:       strategy,
		RewardProgram:  getEnv("REWARD_PROGRAM", "Qantas Frequent Flyer"),
		CountryCode:    getEnv("COUNTRY_CODE", "AU"),
		HTTPTimeout:    time.Duration(getEnvAsInt("HTTP_TIMEOUT", 30)) * time.Second,
	}

	return config, nil
}

func parseStrategy(value string) (entity.Strategy, error) {
	switch entity.Strategy(value) {
	case entity.StrategyMarket:
		return entity.StrategyMarket, nil
	case entity.StrategyLive:
		return entity.StrategyLive, nil
	}
	return "", fmt.Errorf("PRICING_STRATEGY must be %q or %q, got %q",
		entity.StrategyMarket, entity.StrategyLive, value)
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
