package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// configEnv overrides the configuration file location.
	configEnv = "TONALITY_CONFIG"

	appDir            = "tonality"
	defaultConfigFile = "config.yaml"
)

// Config holds user defaults, loaded from
//
//	$TONALITY_CONFIG
//	os.UserConfigDir()/tonality/config.yaml
//
// A missing file gives the defaults.
type Config struct {
	// Key is the key used for spelling when --key is not given.
	Key string `yaml:"key,omitempty"`

	// Format is the output format when --format is not given.
	Format string `yaml:"format,omitempty"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Key:    "c",
		Format: string(FormatText),
	}
}

// ConfigPath returns the configuration file location.
func ConfigPath() (string, error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, defaultConfigFile), nil
}

// LoadConfig reads the configuration at path, filling unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if file.Key != "" {
		cfg.Key = file.Key
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
