package config

import (
	"os"

	"github.com/joho/godotenv"
)

// InitEnv loads a .env file if one is present. A missing file is fine; real
// environment variables still apply.
func InitEnv() {
	_ = godotenv.Load()
}

// EnvOr returns the environment variable for key, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
