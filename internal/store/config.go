package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is built once at startup and handed out piecewise: each component
// receives only the sub-config it needs.
type Config struct {
	DataSource string         `yaml:"data_source"` // LIVE or STATIC
	Feed       FeedConfig     `yaml:"feed"`
	Telegram   TelegramConfig `yaml:"telegram"`
	Schedule   ScheduleConfig `yaml:"schedule"`
	Digest     DigestConfig   `yaml:"digest"`
}

// FeedConfig configures the upstream picks endpoint.
type FeedConfig struct {
	URL            string            `yaml:"url"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Headers        map[string]string `yaml:"headers"`
}

// TelegramConfig configures the Bot API publisher. The token never comes
// from the yaml file; it is injected from the environment at startup.
type TelegramConfig struct {
	Token          string `yaml:"-"`
	ChatID         string `yaml:"chat_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ScheduleConfig configures the supervisor loop.
type ScheduleConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	CooldownSeconds int `yaml:"cooldown_seconds"`
}

// DigestConfig configures the filter/summarize/select/format steps.
type DigestConfig struct {
	Timezone            string  `yaml:"timezone"`
	AmazingThresholdPct float64 `yaml:"amazing_day_threshold"`
	SampleSize          int     `yaml:"sample_size"`
	IncludeLogos        bool    `yaml:"include_logos"`
	MorePicksURL        string  `yaml:"more_picks_url"`
}

func (c *Config) Validate() error {
	if c.DataSource != "STATIC" && c.DataSource != "LIVE" {
		return fmt.Errorf("invalid data_source '%s': must be 'STATIC' or 'LIVE'", c.DataSource)
	}
	if c.Digest.AmazingThresholdPct <= 0 || c.Digest.AmazingThresholdPct > 100 {
		return fmt.Errorf("digest.amazing_day_threshold must be between 0-100, got %.2f", c.Digest.AmazingThresholdPct)
	}
	if c.Digest.SampleSize <= 0 {
		return errors.New("digest.sample_size must be positive")
	}
	if c.Schedule.IntervalSeconds <= 0 || c.Schedule.CooldownSeconds <= 0 {
		return errors.New("schedule interval and cooldown must be positive")
	}
	return nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.DataSource == "" {
		c.DataSource = "STATIC"
	}
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = 15
	}
	if c.Telegram.TimeoutSeconds == 0 {
		c.Telegram.TimeoutSeconds = 10
	}
	if c.Schedule.IntervalSeconds == 0 {
		c.Schedule.IntervalSeconds = 86400
	}
	if c.Schedule.CooldownSeconds == 0 {
		c.Schedule.CooldownSeconds = 60
	}
	if c.Digest.Timezone == "" {
		c.Digest.Timezone = "Africa/Nairobi"
	}
	if c.Digest.AmazingThresholdPct == 0 {
		c.Digest.AmazingThresholdPct = 75
	}
	if c.Digest.SampleSize == 0 {
		c.Digest.SampleSize = 3
	}
}

// LoadConfig reads the yaml config at path, applies defaults, and validates.
// A missing file is not an error; the defaults carry a usable STATIC setup.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
