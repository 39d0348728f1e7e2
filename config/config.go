package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	ADMIN_PASSWORD      string
	ADMIN_PASSWORD_HASH string

	OPENAI_API_KEY  string
	OPENAI_BASE_URL string
	OPENAI_MODEL    string

	CORS_ORIGIN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	// Either a bcrypt hash or a plain shared secret must be present.
	ADMIN_PASSWORD_HASH = getEnv("ADMIN_PASSWORD_HASH", "")
	if ADMIN_PASSWORD_HASH == "" {
		ADMIN_PASSWORD = mustEnv("ADMIN_PASSWORD")
	} else {
		ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
	}

	// AI assist degrades to template fallbacks when the key is missing.
	OPENAI_API_KEY = getEnv("OPENAI_API_KEY", "")
	OPENAI_BASE_URL = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	OPENAI_MODEL = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
