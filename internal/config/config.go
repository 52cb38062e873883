package config

import "os"

type Config struct {
	DatabasePath string
	BaseURL      string
	LogLevel     string
	Port         string
}

func Load() (Config, error) {
	config := Config{
		DatabasePath: envOrDefault("DATABASE_PATH", "./data/apex-dashboard.db"),
		BaseURL:      envOrDefault("BASE_URL", "http://localhost:8080"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		Port:         envOrDefault("PORT", "8080"),
	}
	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
