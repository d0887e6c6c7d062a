// Package config carries the dashboard tuning knobs. Values come from
// defaults, then an optional YAML file, then environment variables, in that
// order. The interval and probability are demo tuning, not product
// contracts, which is why they live here instead of in the feed code.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable pointing at a YAML file.
const EnvConfigPath = "BOARDROOM_CONFIG_PATH"

// Config defines dashboard configuration.
type Config struct {
	// UpdateIntervalMS is the mock stream cadence in milliseconds.
	UpdateIntervalMS int `yaml:"update_interval_ms"`

	// InsightProbability is the chance a tick attaches an insight.
	InsightProbability float64 `yaml:"insight_probability"`

	// PreviewLength truncates insight previews in the side panel. Display
	// tuning only.
	PreviewLength int `yaml:"preview_length"`

	// MinutesPath is the JSON archive that minutes exports append to.
	MinutesPath string `yaml:"minutes_path"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the file-backed logger.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the stock demo tuning.
func Default() Config {
	return Config{
		UpdateIntervalMS:   10_000,
		InsightProbability: 0.3,
		PreviewLength:      100,
		MinutesPath:        "minutes.json",
		Log: LogConfig{
			Path:  "boardroom.log",
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and environment
// variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if value := os.Getenv("BOARDROOM_UPDATE_INTERVAL_MS"); value != "" {
		ms, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BOARDROOM_UPDATE_INTERVAL_MS: %w", err)
		}
		cfg.UpdateIntervalMS = ms
	}
	if value := os.Getenv("BOARDROOM_INSIGHT_PROBABILITY"); value != "" {
		p, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BOARDROOM_INSIGHT_PROBABILITY: %w", err)
		}
		cfg.InsightProbability = p
	}
	if value := os.Getenv("BOARDROOM_MINUTES_PATH"); value != "" {
		cfg.MinutesPath = value
	}
	if value := os.Getenv("BOARDROOM_LOG_PATH"); value != "" {
		cfg.Log.Path = value
	}
	if value := os.Getenv("BOARDROOM_LOG_LEVEL"); value != "" {
		cfg.Log.Level = value
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the dashboard cannot run with.
func (c Config) Validate() error {
	if c.UpdateIntervalMS <= 0 {
		return fmt.Errorf("update_interval_ms must be positive, got %d", c.UpdateIntervalMS)
	}
	if c.InsightProbability < 0 || c.InsightProbability > 1 {
		return fmt.Errorf("insight_probability must be in [0,1], got %g", c.InsightProbability)
	}
	if c.PreviewLength <= 0 {
		return fmt.Errorf("preview_length must be positive, got %d", c.PreviewLength)
	}
	return nil
}

// UpdateInterval returns the stream cadence as a duration.
func (c Config) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalMS) * time.Millisecond
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
