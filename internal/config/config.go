package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"safebak/internal/logging"
	"safebak/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "safebak" // application name used for config and state directories

// ConfigPathEnv overrides the config file location when set.
const ConfigPathEnv = "SAFEBAK_CONFIG_PATH"

const currentVersion = "1.0"

// Config holds user configuration for safebak. Only the log sink is
// configurable; the guarded operations themselves take no settings.
type Config struct {
	// LogFile is the append-only log file every operation is recorded in.
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Version   string `yaml:"version"` // Track config version
}

// ConfigPath returns the config file path for the current platform
func ConfigPath() string {
	if override := os.Getenv(ConfigPathEnv); override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// DefaultLogFile returns the default log file under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, APP_NAME, APP_NAME+".log")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogFile:   DefaultLogFile(),
		LogLevel:  "info",
		LogFormat: logging.FormatLogfmt,
		Version:   currentVersion,
	}
}

// Load loads the config from the standard location.
// A missing config file is not an error: defaults are returned.
func Load() (*Config, error) {
	path := ConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.Debug("No config file, using defaults", "path", path)
		cfg := DefaultConfig()
		return &cfg, nil
	}

	return LoadFrom(path)
}

// LoadFrom loads config from a specific path. Fields absent from the file
// keep their default values; unknown fields are rejected.
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveTo writes the config to path as YAML with 0600 permissions, creating
// the parent directory if needed. An existing file is truncated.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Version == "" {
		c.Version = currentVersion
	}

	if err := fileops.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close config file: %w", err)
	}

	logging.Debug("Wrote config file", "path", path)
	return nil
}

// Validate checks the log settings can be turned into a logger.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

// LoggingOptions returns the options for opening the process log sink.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		File:   c.LogFile,
		Level:  c.LogLevel,
		Format: c.LogFormat,
	}
}
