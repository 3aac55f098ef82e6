package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents avocado predictor configuration
type Config struct {
	// Training data source
	Dataset DatasetConfig `yaml:"dataset"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`

	// Console report settings
	Report ReportConfig `yaml:"report"`
}

// DatasetConfig selects and configures the training data backend
type DatasetConfig struct {
	// Backend selection: "file" or "redis"
	Backend string `yaml:"backend"`

	// File-based backend settings
	File FileDatasetConfig `yaml:"file"`

	// Redis-based backend settings
	Redis RedisDatasetConfig `yaml:"redis"`
}

// FileDatasetConfig locates the dataset on disk. Dir is resolved against the
// project root given on the command line.
type FileDatasetConfig struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
}

// RedisDatasetConfig contains Redis list settings
type RedisDatasetConfig struct {
	// Redis connection
	RedisURL    string `yaml:"redis_url"`
	KeyPrefix   string `yaml:"key_prefix"`
	DatabaseNum int    `yaml:"database_num"`

	DialTimeout string `yaml:"dial_timeout"` // Duration string like "5s"
	BatchSize   int    `yaml:"batch_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	File   string `yaml:"file"`   // log file path, empty = stderr
	Format string `yaml:"format"` // json, text
}

// ReportConfig controls what the predict command prints
type ReportConfig struct {
	ShowScores   bool `yaml:"show_scores"`
	ShowAccuracy bool `yaml:"show_accuracy"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Backend: "file",
			File: FileDatasetConfig{
				Dir:  "data",
				Name: "train_avacados.txt",
			},
			Redis: RedisDatasetConfig{
				RedisURL:    "redis://localhost:6379",
				KeyPrefix:   "avocado",
				DatabaseNum: 0,
				DialTimeout: "5s",
				BatchSize:   100,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			File:   "",
			Format: "text",
		},
		Report: ReportConfig{
			ShowScores:   true,
			ShowAccuracy: true,
		},
	}
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config file specified, return defaults
	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Dataset.Backend {
	case "", "file":
		if c.Dataset.File.Name == "" {
			return fmt.Errorf("dataset file name must not be empty")
		}
		if c.Dataset.File.Dir == "" {
			return fmt.Errorf("dataset file dir must not be empty")
		}
	case "redis":
		if c.Dataset.Redis.RedisURL == "" {
			return fmt.Errorf("dataset redis_url must not be empty")
		}
		if c.Dataset.Redis.KeyPrefix == "" {
			return fmt.Errorf("dataset key_prefix must not be empty")
		}
		if c.Dataset.Redis.BatchSize < 1 {
			return fmt.Errorf("dataset batch_size must be >= 1")
		}
		if _, err := c.Dataset.Redis.Timeout(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("dataset backend must be 'file' or 'redis', got %q", c.Dataset.Backend)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging format must be 'text' or 'json'")
	}

	return nil
}

// Timeout parses DialTimeout; an empty value means no timeout override.
func (r RedisDatasetConfig) Timeout() (time.Duration, error) {
	if r.DialTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.DialTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid dataset dial_timeout %q: %w", r.DialTimeout, err)
	}
	return d, nil
}
