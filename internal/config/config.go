package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// HistoryConfig represents run-history database configuration.
type HistoryConfig struct {
	// Enabled enables recording of executed runs
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database; empty means
	// <appsweep home>/history.db
	DBPath string `yaml:"db_path"`

	// KeepRuns is the maximum number of runs to retain (0 = unlimited)
	KeepRuns int `yaml:"keep_runs"`
}

// Config represents appsweep configuration options.
type Config struct {
	// Extension is the bundle extension to match, including the dot
	Extension string `yaml:"extension"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs will be written
	LogDir string `yaml:"log_dir"`

	// DryRun enables preview mode without deletions
	DryRun bool `yaml:"dry_run"`

	// History contains run-history configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Extension: ".app",
		LogLevel:  "info",
		LogDir:    ".appsweep/logs",
		DryRun:    false,
		History: HistoryConfig{
			Enabled:  true,
			DBPath:   "",
			KeepRuns: 100,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from <dir>/.appsweep/config.yaml,
// falling back to defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".appsweep", "config.yaml"))
}

// MergeWithFlags overrides config values with CLI flag values. Only
// non-nil pointers override, so unset flags leave the file/default
// values intact.
func (c *Config) MergeWithFlags(extension, logLevel, logDir *string, dryRun, historyEnabled *bool) {
	if extension != nil {
		c.Extension = *extension
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if dryRun != nil {
		c.DryRun = *dryRun
	}
	if historyEnabled != nil {
		c.History.Enabled = *historyEnabled
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("extension must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error)", c.LogLevel)
	}

	if c.History.KeepRuns < 0 {
		return fmt.Errorf("history.keep_runs must not be negative")
	}

	return nil
}
