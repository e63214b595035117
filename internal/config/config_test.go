package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RunAddress != "localhost:8080" {
		t.Fatalf("expected default address, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseDriver != "sqlite" || cfg.DatabaseURI == "" {
		t.Fatalf("expected sqlite defaults, got %q %q", cfg.DatabaseDriver, cfg.DatabaseURI)
	}
	if level, _ := cfg.SlogLevel(); level != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", level)
	}
}

func TestLoadEnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load([]string{"-a", ":7070", "-d", "/tmp/pos.db"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("expected env to win, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "/tmp/pos.db" {
		t.Fatalf("expected flag value, got %q", cfg.DatabaseURI)
	}
	if level, _ := cfg.SlogLevel(); level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "driver", args: []string{"-driver", "mysql"}, want: "unsupported database driver"},
		{name: "log level", args: []string{"-l", "loud"}, want: "invalid log level"},
		{name: "unknown flag", args: []string{"-x"}, want: "parse flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
