// Package config loads the process configuration from environment
// variables.
package config

import (
	"os"
	"strings"
)

// Config holds all startup configuration. It is loaded once in main and
// passed down explicitly; nothing reads the environment after startup.
type Config struct {
	// Port the HTTP server listens on (default 8080).
	Port string

	// JWTSecret signs and verifies bearer tokens. Startup must fail when
	// it is empty: every issued token depends on it.
	JWTSecret string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	// InstanceConnectionName switches the DSN to a Cloud SQL unix socket
	// when set.
	InstanceConnectionName string

	// RunMigrations enables AutoMigrate at startup when "true".
	RunMigrations bool

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// CORSAllowedOrigins lists browser origins allowed to call the API
	// (comma-separated). Empty means no CORS headers are sent.
	CORSAllowedOrigins []string
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{
		Port:                   getenv("PORT", "8080"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPass:                 os.Getenv("DB_PASSWORD"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBName:                 os.Getenv("DB_NAME"),
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		RunMigrations:          os.Getenv("RUN_MIGRATIONS") == "true",
		RedisHost:              os.Getenv("REDIS_HOST"),
		RedisPort:              os.Getenv("REDIS_PORT"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
