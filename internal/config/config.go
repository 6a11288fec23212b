// Package config provides configuration loading from a YAML file and
// environment variables. Environment variables take precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Device DeviceConfig `yaml:"device"`
	Lock   LockConfig   `yaml:"lock"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// DeviceConfig selects the touchpad a session runs against.
type DeviceConfig struct {
	// Path pins the session to one event node. Empty means discover.
	Path string `yaml:"path"`

	// Wait keeps startup blocked until a touchpad is plugged in,
	// instead of failing when none is present.
	Wait bool `yaml:"wait"`
}

// LockConfig selects how the pointer is locked during a session.
type LockConfig struct {
	// Backend is one of auto, xinput, gsettings, grab, none.
	Backend string `yaml:"backend"`
}

// OutputConfig controls how positions are written to stdout.
type OutputConfig struct {
	// Format is one of text, jsonl.
	Format string `yaml:"format"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "abstouch")
}

// DefaultConfigPath returns the config file path, honoring the
// ABSTOUCH_CONFIG override.
func DefaultConfigPath() string {
	if p := os.Getenv("ABSTOUCH_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Load assembles configuration from defaults, the YAML file, and
// environment variables, in increasing precedence. A missing file is
// fine; a malformed one is not.
func Load() (*Config, error) {
	cfg := &Config{
		Lock:   LockConfig{Backend: "auto"},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info"},
	}

	configPath := DefaultConfigPath()
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	}

	if v := os.Getenv("ABSTOUCH_DEVICE"); v != "" {
		cfg.Device.Path = v
	}
	if v := os.Getenv("ABSTOUCH_DEVICE_WAIT"); v != "" {
		wait, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing ABSTOUCH_DEVICE_WAIT=%q: %w", v, err)
		}
		cfg.Device.Wait = wait
	}
	if v := os.Getenv("ABSTOUCH_LOCK_BACKEND"); v != "" {
		cfg.Lock.Backend = v
	}
	if v := os.Getenv("ABSTOUCH_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("ABSTOUCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}

// WriteConfigFile writes the config to the YAML file, creating the
// directory when needed.
func WriteConfigFile(cfg *Config) error {
	path := DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
