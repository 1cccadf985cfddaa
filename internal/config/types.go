package config

import "time"

type Config struct {
	BackendGraphQLURL string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	SessionSecret     string
	AdminEmail        string
	Environment       string

	// how long an idle browser session keeps its store alive
	SessionTTL time.Duration
}
