package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Dataset.File.Name != "train_avacados.txt" {
		t.Errorf("unexpected default dataset name %q", cfg.Dataset.File.Name)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Dataset.Backend != "file" {
		t.Errorf("expected file backend, got %q", cfg.Dataset.Backend)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Dataset.Backend = "redis"
	cfg.Dataset.Redis.KeyPrefix = "test:avocado"
	cfg.Logging.Level = "debug"
	cfg.Report.ShowScores = false

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Dataset.Backend != "redis" || loaded.Dataset.Redis.KeyPrefix != "test:avocado" {
		t.Errorf("dataset settings not preserved: %+v", loaded.Dataset)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("logging level not preserved: %q", loaded.Logging.Level)
	}
	if loaded.Report.ShowScores {
		t.Error("show_scores not preserved")
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Dataset.File.Dir != "data" {
		t.Errorf("expected default dir, got %q", cfg.Dataset.File.Dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown backend", func(c *Config) { c.Dataset.Backend = "s3" }, "backend"},
		{"empty file name", func(c *Config) { c.Dataset.File.Name = "" }, "file name"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "format"},
		{"bad timeout", func(c *Config) {
			c.Dataset.Backend = "redis"
			c.Dataset.Redis.DialTimeout = "soon"
		}, "dial_timeout"},
		{"zero batch", func(c *Config) {
			c.Dataset.Backend = "redis"
			c.Dataset.Redis.BatchSize = 0
		}, "batch_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRedisTimeout(t *testing.T) {
	d, err := DefaultConfig().Dataset.Redis.Timeout()
	if err != nil {
		t.Fatalf("Timeout failed: %v", err)
	}
	if d != 5*time.Second {
		t.Errorf("Timeout = %v, expected 5s", d)
	}
}

func TestValidateEmptyBackendIsFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dataset.Backend = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty backend should validate as file: %v", err)
	}

	cfg.Dataset.File.Name = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "file name") {
		t.Errorf("expected file name error for empty backend, got %v", err)
	}
}
