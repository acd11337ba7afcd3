package config

import (
	"os"
	"strings"

	"github.com/lisbeauty/storefront/pkg/database"
)

// Storage backends selectable via STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds the storefront configuration
type Config struct {
	HTTPPort string

	// Storage
	StoreBackend string
	StoreFile    string
	RedisAddr    string
	RedisPass    string
	Database     database.Config

	// Messaging; empty disables event publishing
	KafkaBrokers []string

	// Observability
	ServiceName   string
	IsDevelopment bool
	TracingOn     bool
}

// Load reads the configuration from environment variables
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", BackendFile),
		StoreFile:     getEnv("STORE_FILE", "lisbeauty.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     getEnv("REDIS_PASSWORD", ""),
		ServiceName:   getEnv("SERVICE_NAME", "storefront"),
		IsDevelopment: getEnv("APP_ENV", "development") == "development",
		TracingOn:     getEnv("TRACING_ENABLED", "false") == "true",
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "lisbeauty"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
