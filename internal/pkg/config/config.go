package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
	Audit    AuditConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// LifetimeMinutes is the token lifetime; exp = iat + lifetime.
	LifetimeMinutes int `env:"JWT_LIFETIME_MINUTES, default=30"`
}

// Lifetime returns the configured token lifetime as a duration.
func (c JWTConfig) Lifetime() time.Duration {
	return time.Duration(c.LifetimeMinutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=todolist"`
}

type RedisConfig struct {
	// Addr left empty disables Redis-backed features (login throttle).
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type ThrottleConfig struct {
	MaxFailures   int `env:"LOGIN_MAX_FAILURES,   default=5"`
	WindowMinutes int `env:"LOGIN_WINDOW_MINUTES, default=15"`
}

// Window returns the throttle window as a duration.
func (c ThrottleConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
