// Package config loads application settings from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP
	ListenAddr string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	RedisAddr     string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables. A .env file, when
// present, is loaded first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: fixPort(getEnv("PORT", "3000")),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		SessionSecret: getEnv("SESSION_SECRET", "development-key"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		RedisAddr:     os.Getenv("REDIS_ADDR"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DBName == "" {
		return nil, errors.New("missing required env: DB_NAME")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func fixPort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
