// Package config loads application configuration from environment variables.
// Required variables fail startup collectively so operators see every missing
// value in one pass instead of fixing them one restart at a time.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type ServerConfig struct {
	Port string
}

type Config struct {
	Mongo       MongoConfig
	Auth        AuthConfig
	Server      ServerConfig
	Development bool
}

func requiredEnv(key string, missing *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*missing = append(*missing, key)
		return ""
	}
	return value
}

func optionalEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Load reads configuration from the environment. It returns an error listing
// every missing or malformed variable.
func Load() (*Config, error) {
	var missing []string

	mongoURI := requiredEnv("MONGO_URI", &missing)
	jwtSecret := requiredEnv("JWT_SECRET", &missing)

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	tokenTTL := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %v", raw, err)
		}
		tokenTTL = parsed
	}

	return &Config{
		Mongo: MongoConfig{
			URI:      mongoURI,
			Database: optionalEnv("MONGO_DATABASE", "expense-tracker"),
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
			TokenTTL:  tokenTTL,
		},
		Server: ServerConfig{
			Port: optionalEnv("PORT", "5000"),
		},
		Development: optionalEnv("ENVIRONMENT", "development") != "production",
	}, nil
}
