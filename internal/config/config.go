// Package config loads application settings from the environment.
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"host=localhost user=user password=password dbname=anonchatdb port=5432 sslmode=disable"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
}

// Load reads .env (when present) and parses the environment into a
// Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
