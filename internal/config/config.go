package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl     string `env:"DB_URL,required,notEmpty"`
	DBName    string `env:"DB_NAME" envDefault:"petstore"`
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	Port      string `env:"PORT" envDefault:"5000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadConfig reads an optional .env file and then the process environment.
// DB_URL and JWT_SECRET are mandatory.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using process environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
