package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devFormSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	FormSecret     string
	FormExpiry     time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	RandomSource   string
}

// Load reads the configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		FormSecret:     getEnv("FORM_TOKEN_SECRET", devFormSecret),
		FormExpiry:     getDuration("FORM_TOKEN_EXPIRY", 30*time.Minute),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
		RandomSource:   getEnv("RANDOM_SOURCE", "crypto"),
	}

	if cfg.Env == "production" && cfg.FormSecret == devFormSecret {
		slog.Error("FORM_TOKEN_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
