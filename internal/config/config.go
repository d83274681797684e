package config

import (
	"errors"
	"os"
)

// Config holds everything the process reads from the environment.
// JWTSecret and DatabaseURL have no defaults on purpose: starting with a
// well-known fallback secret is worse than not starting at all.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigin  string
	UploadDir   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "3001"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigin:  getenv("CORS_ORIGIN", "http://localhost:3000"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
