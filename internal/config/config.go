package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines configuration for the tally CLI.
type Config struct {
	Label      string        `yaml:"label"`
	Interval   time.Duration `yaml:"interval"`
	CheckEvery int           `yaml:"check_every"`
	Segments   int           `yaml:"segments"`
	Window     int           `yaml:"window"`
	Keep       bool          `yaml:"keep"`
	Bucket     string        `yaml:"bucket"`
	Prefix     string        `yaml:"prefix"`
	Dir        string        `yaml:"dir"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Interval:   100 * time.Millisecond,
		CheckEvery: 1,
		Segments:   10,
		Window:     250,
	}
}

// yamlConfig is used for YAML unmarshaling with string durations.
type yamlConfig struct {
	Label      string `yaml:"label"`
	Interval   string `yaml:"interval"`
	CheckEvery int    `yaml:"check_every"`
	Segments   int    `yaml:"segments"`
	Window     int    `yaml:"window"`
	Keep       bool   `yaml:"keep"`
	Bucket     string `yaml:"bucket"`
	Prefix     string `yaml:"prefix"`
	Dir        string `yaml:"dir"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Label != "" {
		cfg.Label = yc.Label
	}
	if yc.Interval != "" {
		d, err := time.ParseDuration(yc.Interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse interval: %w", err)
		}
		cfg.Interval = d
	}
	if yc.CheckEvery != 0 {
		cfg.CheckEvery = yc.CheckEvery
	}
	if yc.Segments != 0 {
		cfg.Segments = yc.Segments
	}
	if yc.Window != 0 {
		cfg.Window = yc.Window
	}
	cfg.Keep = yc.Keep
	if yc.Bucket != "" {
		cfg.Bucket = yc.Bucket
	}
	if yc.Prefix != "" {
		cfg.Prefix = yc.Prefix
	}
	if yc.Dir != "" {
		cfg.Dir = yc.Dir
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the TALLY_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("TALLY_LABEL"); v != "" {
		c.Label = v
	}
	if v := os.Getenv("TALLY_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse TALLY_INTERVAL: %w", err)
		}
		c.Interval = d
	}
	if v := os.Getenv("TALLY_CHECK_EVERY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse TALLY_CHECK_EVERY: %w", err)
		}
		c.CheckEvery = n
	}
	if v := os.Getenv("TALLY_SEGMENTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse TALLY_SEGMENTS: %w", err)
		}
		c.Segments = n
	}
	if v := os.Getenv("TALLY_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse TALLY_WINDOW: %w", err)
		}
		c.Window = n
	}
	if v := os.Getenv("TALLY_KEEP"); v != "" {
		c.Keep = v == "true" || v == "1"
	}
	if v := os.Getenv("TALLY_BUCKET"); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv("TALLY_PREFIX"); v != "" {
		c.Prefix = v
	}
	if v := os.Getenv("TALLY_DIR"); v != "" {
		c.Dir = v
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Interval < 0 {
		return errors.New("config: interval must not be negative")
	}
	if c.CheckEvery <= 0 {
		return errors.New("config: check_every must be positive")
	}
	if c.Segments <= 0 {
		return errors.New("config: segments must be positive")
	}
	if c.Window <= 0 {
		return errors.New("config: window must be positive")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.Label != "" {
		c.Label = override.Label
	}
	if override.Interval != 0 {
		c.Interval = override.Interval
	}
	if override.CheckEvery != 0 {
		c.CheckEvery = override.CheckEvery
	}
	if override.Segments != 0 {
		c.Segments = override.Segments
	}
	if override.Window != 0 {
		c.Window = override.Window
	}
	if override.Keep {
		c.Keep = override.Keep
	}
	if override.Bucket != "" {
		c.Bucket = override.Bucket
	}
	if override.Prefix != "" {
		c.Prefix = override.Prefix
	}
	if override.Dir != "" {
		c.Dir = override.Dir
	}
	return c
}
