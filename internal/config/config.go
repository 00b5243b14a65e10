package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Shopify
	ShopHandle  string
	APIVersion  string
	AccessToken string

	// OpenAI
	OpenAIAPIKey string
	OpenAIModel  string

	// Storage
	DataDir string

	// Kafka (empty disables event publishing)
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	cfg := &Config{
		ShopHandle:   getEnv("SHOP_HANDLE", ""),
		APIVersion:   getEnv("SHOPIFY_API_VERSION", "2024-04"),
		AccessToken:  getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),
		DataDir:      getEnv("DATA_DIR", "."),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		APIPort:      getEnv("API_PORT", "8080"),
		APIHost:      getEnv("API_HOST", "0.0.0.0"),
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.ShopHandle == "" {
		return nil, fmt.Errorf("SHOP_HANDLE is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
