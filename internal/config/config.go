// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime settings. Redis settings are optional: with no
// REDIS_ADDR the server still starts, but every data operation fails with a
// server-error condition until a store is configured.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" env-default:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"720h"`

	CORSOrigins []string `env:"CORS_ORIGINS" env-default:"*"`

	RateLimitPerSecond int `env:"RATE_LIMIT_PER_SECOND" env-default:"20"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" env-default:"40"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// StoreConfigured reports whether a document store backend is configured.
func (c Config) StoreConfigured() bool { return c.RedisAddr != "" }
