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

// Module-specific config interfaces keep each consumer on the narrowest
// surface it needs (principle of least privilege).

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// StoreConfig provides settings for repository-level store access.
type StoreConfig interface {
	GetStoreTimeout() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	StoreTimeout       time.Duration
	CORSAllowAll       bool
	CORSOrigins        []string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from environment variables, with .env support
// for local development. DATABASE_URL is the only required value.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be fully set already.
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":3000"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		StoreTimeout:       getDuration("STORE_TIMEOUT", 5*time.Second),
		CORSAllowAll:       getBool("CORS_ALLOW_ALL", true),
		CORSOrigins:        getList("CORS_ORIGINS"),
		RateLimitPerSecond: getFloat("RATE_LIMIT_PER_SECOND", 50),
		RateLimitBurst:     getInt("RATE_LIMIT_BURST", 100),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.StoreTimeout <= 0 {
		return nil, fmt.Errorf("STORE_TIMEOUT must be positive")
	}

	return cfg, nil
}

// GetDatabaseURL implements DatabaseConfig.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// GetStoreTimeout implements StoreConfig.
func (c *Config) GetStoreTimeout() time.Duration { return c.StoreTimeout }

// GetHTTPAddr implements HTTPConfig.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll implements HTTPConfig.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins implements HTTPConfig.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetRateLimitPerSecond implements HTTPConfig.
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }

// GetRateLimitBurst implements HTTPConfig.
func (c *Config) GetRateLimitBurst() int { return c.RateLimitBurst }

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
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

func getInt(key string, fallback int) int {
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

func getFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
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

func getList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
