// Package config loads service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// devJWTSecret is the fallback signing secret for local development.
// Production deployments must set JWT_SECRET; Load warns when the
// fallback is in use.
const devJWTSecret = "Ch@ng31tN0W!"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	AccessTTL     time.Duration
	CORSOrigins   []string
	ShopSeed      bool
}

func Load() *Config {
	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseDSN:   getenv("DATABASE_DSN", ""),
		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		JWTSecret:     getenv("JWT_SECRET", devJWTSecret),
		AccessTTL:     getduration("ACCESS_TOKEN_TTL", 60*time.Minute),
		CORSOrigins:   strings.Split(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
		ShopSeed:      getenv("SHOP_SEED", "true") == "true",
	}

	if cfg.JWTSecret == devJWTSecret {
		slog.Warn("JWT_SECRET not set, using development fallback")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
