package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs at startup. It is built once
// in main and handed to each component explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret []byte
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI must be set")
	}

	// No fallback: a well-known default secret lets anyone forge tokens.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		Port:      getEnv("PORT", "5000"),
		MongoURI:  mongoURI,
		MongoDB:   getEnv("MONGO_DB", "SwiggyProject"),
		JWTSecret: []byte(secret),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
