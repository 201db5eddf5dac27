package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL    = "https://api.coingecko.com/api/v3"
	DefaultTimeout    = 30 * time.Second
	DefaultInterval   = 300 * time.Second
	DefaultOutputFile = "crypto_data.xlsx"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"` // 0 disables the client timeout
	} `yaml:"data_source"`
	Schedule struct {
		Interval time.Duration `yaml:"interval"`
	} `yaml:"schedule"`
	Report struct {
		OutputFile string `yaml:"output_file"`
		AutoOpen   bool   `yaml:"auto_open"`
		DryRun     bool   `yaml:"dry_run"`
	} `yaml:"report"`
	Log   LogConfig `yaml:"log"`
	Proxy string    `yaml:"proxy"`
}

// LogConfig defines the logger options.
type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Format      string `yaml:"format"`      // json or console
	OutputFile  string `yaml:"output_file"` // rotated log file, optional
	Environment string `yaml:"environment"` // dev or prod
}

// Load reads config from a YAML file and an optional .env file, then applies
// environment variable overrides. A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Report.AutoOpen = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = DefaultBaseURL
	}
	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = DefaultInterval
	}
	if cfg.Report.OutputFile == "" {
		cfg.Report.OutputFile = DefaultOutputFile
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Environment == "" {
		cfg.Log.Environment = "dev"
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		c.DataSource.BaseURL = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
		}
		c.DataSource.Timeout = d
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse POLL_INTERVAL: %w", err)
		}
		c.Schedule.Interval = d
	}
	if v := os.Getenv("REPORT_FILE"); v != "" {
		c.Report.OutputFile = v
	}
	if v := os.Getenv("AUTO_OPEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse AUTO_OPEN: %w", err)
		}
		c.Report.AutoOpen = b
	}
	if v := os.Getenv("DRY_RUN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse DRY_RUN: %w", err)
		}
		c.Report.DryRun = b
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.Log.OutputFile = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.Proxy = v
	}
	return nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if _, err := url.ParseRequestURI(c.DataSource.BaseURL); err != nil {
		return fmt.Errorf("data_source.base_url: %w", err)
	}
	if c.DataSource.Timeout < 0 {
		return fmt.Errorf("data_source.timeout must not be negative")
	}
	if c.Schedule.Interval < time.Second {
		return fmt.Errorf("schedule.interval must be at least 1s, got %s", c.Schedule.Interval)
	}
	if c.Report.OutputFile == "" {
		return fmt.Errorf("report.output_file is required")
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
