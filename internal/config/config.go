package config

import (
	"log"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	Port      string
	PublicURL string
	StaticDir string
	ScoreFile string
	Debug     bool
}

// Load reads an optional .env file and then the environment
func Load() *Config {
	if err := loadDotenv(".env"); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	port := getEnv("PORT", "3000")
	return &Config{
		Port:      port,
		PublicURL: getEnv("PUBLIC_URL", "http://localhost:"+port),
		StaticDir: getEnv("STATIC_DIR", "static"),
		ScoreFile: getEnv("SNAKE_SCORE_FILE", defaultScoreFile()),
		Debug:     os.Getenv("DEBUG") != "",
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultScoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "blobarena", "scores.json")
}
