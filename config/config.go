package config

import (
	"os"
	"time"
)

// Config carries process configuration read from the environment.
type Config struct {
	Port       string
	SQLitePath string
	// PostgresDSN switches the counter store from SQLite to the
	// hash-partitioned Postgres table when set.
	PostgresDSN string
	SentryDSN   string
	Redis       RedisConfig
	// StatsCacheTTL bounds staleness of the read-only stats route.
	StatsCacheTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment variables with local-dev
// defaults.
func Load() *Config {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		PostgresDSN:   os.Getenv("DATABASE_URL"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		StatsCacheTTL: 30 * time.Second,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "hits.db"
	}

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	if v := os.Getenv("STATS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.StatsCacheTTL = d
		}
	}
	return cfg
}
