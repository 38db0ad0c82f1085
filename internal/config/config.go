package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	KeyLogLevel  = "log_level"
	KeyLogFile   = "log_file"
	KeyExportDir = "export_dir"
)

var validLevels = []string{"debug", "info", "warn", "error"}

// Config holds user preferences. Logged workouts and meals are never stored here.
type Config struct {
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file,omitempty"`
	ExportDir string `json:"export_dir,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Dir returns the burnbite config directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".burnbite")
}

// Path returns the path to config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// Keys returns the settable config keys.
func Keys() []string {
	return []string{KeyLogLevel, KeyLogFile, KeyExportDir}
}

// Read loads the config file. Returns the defaults if the file does not exist.
func Read(homeDir string) (*Config, error) {
	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path(homeDir), err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	return cfg, nil
}

// Write saves the config file, creating the directory if needed.
func Write(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyLogLevel:
		return c.LogLevel, nil
	case KeyLogFile:
		return c.LogFile, nil
	case KeyExportDir:
		return c.ExportDir, nil
	}
	return "", unknownKey(key)
}

// Set validates and stores value under key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyLogLevel:
		level := strings.ToLower(strings.TrimSpace(value))
		if !isValidLevel(level) {
			return fmt.Errorf("invalid log level %q (valid: %s)", value, strings.Join(validLevels, ", "))
		}
		c.LogLevel = level
	case KeyLogFile:
		c.LogFile = strings.TrimSpace(value)
	case KeyExportDir:
		c.ExportDir = strings.TrimSpace(value)
	default:
		return unknownKey(key)
	}
	return nil
}

func isValidLevel(level string) bool {
	for _, l := range validLevels {
		if l == level {
			return true
		}
	}
	return false
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key '%s' (valid: %s)", key, strings.Join(Keys(), ", "))
}
