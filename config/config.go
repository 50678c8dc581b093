package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config reads an environment variable, loading .env once if present.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Error loading .env file")
	}
	return os.Getenv(key)
}

// ConfigDefault reads an environment variable with a fallback value.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
