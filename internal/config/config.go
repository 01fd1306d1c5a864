package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Data DataConfig
	App  AppConfig
}

// DataConfig holds the flat-file input and output locations
type DataConfig struct {
	Glob       string
	ReportsDir string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

func Load() (*Config, error) {
	// .env is optional; env vars and defaults cover CLI usage
	_ = godotenv.Load()

	config := &Config{}

	config.Data = DataConfig{
		Glob:       getEnv("DATA_GLOB", "data/*.csv"),
		ReportsDir: getEnv("REPORTS_DIR", "reports"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Data.Glob == "" {
		return fmt.Errorf("DATA_GLOB is required")
	}
	if c.Data.ReportsDir == "" {
		return fmt.Errorf("REPORTS_DIR is required")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
