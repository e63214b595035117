package config

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"cafecalmo/internal/database"
)

// Config values come from flags first; environment variables override them.
type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseDriver string `env:"DATABASE_DRIVER"`
	DatabaseURI    string `env:"DATABASE_URI"`
	JWTSecret      string `env:"JWT_SECRET"`
	LogLevel       string `env:"LOG_LEVEL"`
}

func Load(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("cafecalmo", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	fs.StringVar(&cfg.DatabaseDriver, "driver", database.DriverSQLite, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseURI, "d", "cafe_casa_calmo.db", "database file path or URI")
	fs.StringVar(&cfg.JWTSecret, "s", "super-secret-jwt-key", "jwt signing key")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DatabaseDriver {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
