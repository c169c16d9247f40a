package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/strideapp/stride/pkg/jwtx"
)

type Config struct {
	TokenSecret string // Required: HMAC secret for signing tokens
	Issuer      string // Optional: issuer claim for tokens (default: stride)

	AccessTokenTTL      time.Duration // Optional: access token lifetime (default: 30m)
	RefreshTokenTTL     time.Duration // Optional: refresh token lifetime (default: 7d)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./stride.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, with an optional
// .env file for local development. Missing values fall back to defaults;
// only the token secret is validated later, in New.
func LoadConfig() Config {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	return Config{
		TokenSecret:         os.Getenv("STRIDE_TOKEN_SECRET"),
		Issuer:              getEnvOrDefault("STRIDE_ISSUER", "stride"),
		AccessTokenTTL:      getEnvDurationOrDefault("STRIDE_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:     getEnvDurationOrDefault("STRIDE_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		DatabaseFile:        getEnvOrDefault("STRIDE_DATABASE_FILE", "stride.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
