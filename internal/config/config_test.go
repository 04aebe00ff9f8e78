package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DBPath == "" {
		t.Error("expected default DBPath")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		return &Config{
			Port:      "8080",
			DBPath:    filepath.Join(t.TempDir(), "test.db"),
			LogLevel:  "info",
			LogFormat: "text",
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := valid(t).Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("rejects non-numeric port", func(t *testing.T) {
		cfg := valid(t)
		cfg.Port = "abc"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "port") {
			t.Errorf("expected port error, got %v", err)
		}
	})

	t.Run("rejects out-of-range port", func(t *testing.T) {
		cfg := valid(t)
		cfg.Port = "70000"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for port 70000")
		}
	})

	t.Run("rejects empty db path", func(t *testing.T) {
		cfg := valid(t)
		cfg.DBPath = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for empty db path")
		}
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		cfg := valid(t)
		cfg.LogLevel = "loud"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown log level")
		}
	})

	t.Run("collects multiple errors", func(t *testing.T) {
		cfg := valid(t)
		cfg.Port = "abc"
		cfg.LogFormat = "xml"
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "port") || !strings.Contains(err.Error(), "log format") {
			t.Errorf("expected both errors reported, got %v", err)
		}
	})
}
