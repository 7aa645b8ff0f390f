package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	LogLevel        string
	RelayURL        string
	RelayTimeout    time.Duration
	ResetDelay      time.Duration
	FormInstanceTTL time.Duration
	FormLimit       int
	SweepInterval   time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig reads configuration from the environment. Values from a .env file are
// already in the environment via godotenv/autoload.
func LoadConfig(logger *slog.Logger) *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RelayURL:        getEnv("FORM_RELAY_URL", defaultRelayURL),
		RelayTimeout:    getDuration(logger, "RELAY_TIMEOUT", 10*time.Second),
		ResetDelay:      getDuration(logger, "CONTACT_RESET_DELAY", defaultResetDelay),
		FormInstanceTTL: getDuration(logger, "FORM_INSTANCE_TTL", 30*time.Minute),
		FormLimit:       getInt(logger, "FORM_INSTANCE_LIMIT", 10000),
		SweepInterval:   getDuration(logger, "SWEEP_INTERVAL", time.Minute),
		ShutdownTimeout: getDuration(logger, "SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(logger *slog.Logger, key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if logger != nil {
			logger.Warn("invalid duration, using default", "key", key, "value", raw, "default", fallback.String())
		}
		return fallback
	}
	return d
}

func getInt(logger *slog.Logger, key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		if logger != nil {
			logger.Warn("invalid integer, using default", "key", key, "value", raw, "default", fallback)
		}
		return fallback
	}
	return n
}
