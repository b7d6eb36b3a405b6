package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Issuer claim for tokens (default: tollgate-auth)

	AccessTTL  time.Duration // Access token lifetime (default: 1h)
	RefreshTTL time.Duration // Refresh token lifetime (default: 168h)
	Leeway     time.Duration // Clock skew tolerance during verification (default: 0)

	MasterKeyPath string // Optional: path to master encryption key file for secure parameters
	DatabaseFile  string // Path to SQLite database file (default: ./tollgate.db)
	ParamCacheTTL time.Duration // How long fetched parameters are cached (default: 30s)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "tollgate-auth"),
		AccessTTL:           getEnvDurationOrDefault("AUTH_ACCESS_TTL", time.Hour),
		RefreshTTL:          getEnvDurationOrDefault("AUTH_REFRESH_TTL", 7*24*time.Hour),
		Leeway:              getEnvDurationOrDefault("AUTH_LEEWAY", 0),
		MasterKeyPath:       os.Getenv("TOLLGATE_MASTER_KEY_PATH"),
		DatabaseFile:        getEnvOrDefault("TOLLGATE_DATABASE_FILE", "tollgate.db"),
		ParamCacheTTL:       getEnvDurationOrDefault("TOLLGATE_PARAM_CACHE_TTL", 30*time.Second),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
