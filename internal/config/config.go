package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	AppEnv          string
	LogLevel        string

	Locale         string
	Currency       string
	CurrencySymbol string

	SessionTTL        time.Duration
	SessionSweepEvery time.Duration
	CORSAllowOrigins  []string
	CatalogProject    string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN selects the built-in demo catalog.
func FromEnv() Config {
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:      os.Getenv("DB_DSN"),
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT_SECONDS", time.Second, 10*time.Second),
		AppEnv:            envOrDefault("APP_ENV", "dev"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		Locale:            envOrDefault("WIDGET_LOCALE", "nl-BE"),
		Currency:          envOrDefault("WIDGET_CURRENCY", "EUR"),
		CurrencySymbol:    envOrDefault("WIDGET_CURRENCY_SYMBOL", "€"),
		SessionTTL:        envDuration("SESSION_TTL_MINUTES", time.Minute, 2*time.Hour),
		SessionSweepEvery: envDuration("SESSION_SWEEP_SECONDS", time.Second, time.Minute),
		CORSAllowOrigins:  envList("CORS_ALLOW_ORIGINS"),
		CatalogProject:    envOrDefault("CATALOG_PROJECT", "demo"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration reads an integer count of unit. Zero is accepted and disables
// the corresponding timer.
func envDuration(key string, unit, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 {
			return time.Duration(n) * unit
		}
	}
	return def
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
