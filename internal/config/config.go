// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "4000".
	Port string

	// TripsFile is the path of the JSON file holding the trip collection.
	// Defaults to "data/trips.json". The file and its parent directory are
	// created on first write; a missing file just means an empty journal.
	TripsFile string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] (any origin), matching the development backend the
	// mobile app expects. Set CORS_ORIGINS to a comma-separated list to
	// scope it down.
	CORSOrigins []string

	// PersistTimeout bounds the durable write on each mutation. Defaults
	// to 5s. Set PERSIST_TIMEOUT to any Go duration string to override.
	PersistTimeout time.Duration

	// MaxBodyBytes caps incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Every variable has a default; an error is returned only for values that
// fail to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "4000"),
		TripsFile:   getEnv("TRIPS_FILE", "data/trips.json"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var err error

	cfg.PersistTimeout, err = time.ParseDuration(getEnv("PERSIST_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PERSIST_TIMEOUT: %w", err)
	}

	cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
