package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment
type Config struct {
	AppEnv string
	DBPath string
	Port   string
}

// Load reads an optional .env file and then the environment, with defaults
// suitable for local development.
func Load() *Config {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		AppEnv: envOr("APP_ENV", "development"),
		DBPath: envOr("FLIGHTSAPI_DB_PATH", "flightsapi.db"),
		Port:   envOr("PORT", "8080"),
	}
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
