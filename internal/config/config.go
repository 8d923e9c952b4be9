// Package config loads the report tool configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the configuration.
const (
	DefaultTimezone  = "Asia/Shanghai"
	DefaultOutputDir = "reports"
	DefaultHTTPAddr  = ":8080"
)

// Config holds everything the report tool needs at startup.
type Config struct {
	// Database is the path to the Uptime Kuma SQLite database.
	Database string `yaml:"database"`

	// Timezone is the reference timezone for calendar period boundaries.
	// Defaults to Asia/Shanghai.
	Timezone string `yaml:"timezone"`

	// Company appears in the rendered report header.
	Company CompanyConfig `yaml:"company"`

	// OutputDir is where rendered report files are written (default "reports").
	OutputDir string `yaml:"output_dir"`

	// LogDir enables rotating file logs when set; empty disables logging.
	LogDir string `yaml:"log_dir"`

	// HTTPAddr is the listen address for serve mode (default ":8080").
	HTTPAddr string `yaml:"http_addr"`
}

// CompanyConfig labels the rendered report.
type CompanyConfig struct {
	Name        string `yaml:"name"`
	EnglishName string `yaml:"english_name"`
}

// Load reads and parses the config file at path. Missing fields are filled
// with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values.
func Defaults() *Config {
	return &Config{
		Timezone:  DefaultTimezone,
		OutputDir: DefaultOutputDir,
		HTTPAddr:  DefaultHTTPAddr,
		Company: CompanyConfig{
			Name:        "网站监测项目组",
			EnglishName: "Website Monitoring Project Team",
		},
	}
}

// Validate checks structural constraints on the configuration.
func (c *Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("database path is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q is unknown: %w", c.Timezone, err)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

// Location returns the reference timezone as a *time.Location. Validate must
// have succeeded first.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
