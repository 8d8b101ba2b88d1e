package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Login    LoginConfig
	Audit    AuditConfig
}

type PostgresConfig struct {
	URL      string `env:"POSTGRES_URL, default=postgres://localhost:5432/playground?sslmode=disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS, default=10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LoginConfig tunes the failed-login limiter.
type LoginConfig struct {
	MaxFailures int64         `env:"LOGIN_MAX_FAILURES, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// AuditConfig tunes the audit-event dispatcher.
type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
