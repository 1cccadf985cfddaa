package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// fallback admin account; the role column is the primary admin signal,
	// this email is the well-known secondary one
	defaultAdminEmail = "admin@skillsprint.com"

	defaultSessionTTL = 24 * time.Hour
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	backendURL := os.Getenv("BACKEND_GRAPHQL_URL")
	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	environment := os.Getenv("ENVIRONMENT")

	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_GRAPHQL_URL environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}

	if environment == "" {
		environment = "development"
	}

	sessionTTL := defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		sessionTTL = parsed
	}

	return &Config{
		BackendGraphQLURL: backendURL,
		DatabaseURL:       databaseURL,
		RedisURL:          redisURL,
		JWTSecret:         jwtSecret,
		SessionSecret:     sessionSecret,
		AdminEmail:        adminEmail,
		Environment:       environment,
		SessionTTL:        sessionTTL,
	}, nil
}
