package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker bool
	Port     string

	// Database configs
	MongoURI     string
	DatabaseName string
}

var Env Environment

// LoadEnv loads environment variables from .env file if present and fills
// Env with defaults. The MongoDB URI is deliberately not validated here:
// the server must start without a configured database, and the connection
// provider rejects a missing or placeholder URI on first use.
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "5000")

	// Database configs
	Env.MongoURI = os.Getenv("MONGODB_URI")
	Env.DatabaseName = getEnvWithDefault("DATABASE_NAME", "tlb_kitchen_website")

	return nil
}

// Helper function to get environment variables with defaults
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
