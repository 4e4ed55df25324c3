package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every setting the application needs. It is loaded once in
// main and passed into constructors; no other package reads the environment.
type Config struct {
	DBConnectionString string
	JWTSecret          string
	Port               string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		Port:               os.Getenv("PORT"),
	}
	if cfg.DBConnectionString == "" {
		return nil, errors.New("no DB_CONNECTION_STRING provided")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("no JWT_SECRET provided")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
