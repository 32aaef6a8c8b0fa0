// Package config loads the optional droid.yaml application configuration
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the application directory.
const FileName = "droid.yaml"

// Config represents the optional droid.yaml configuration.
type Config struct {
	App AppConfig `yaml:"app"`
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name    string `yaml:"name,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// UIConfig controls the rendering mode.
type UIConfig struct {
	// GUI enables the GUI backend. False runs console mode.
	GUI bool `yaml:"gui,omitempty"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level       string `yaml:"level,omitempty"`
	Development bool   `yaml:"development,omitempty"`
}

// envOverrides maps DROID_* environment variables onto config fields.
// Pointer fields distinguish "unset" from zero values.
type envOverrides struct {
	AppName    string `envconfig:"APP_NAME"`
	AppPackage string `envconfig:"APP_PACKAGE"`
	GUI        *bool  `envconfig:"GUI"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
	LogDev     *bool  `envconfig:"LOG_DEV"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		App: AppConfig{Name: "droid-app", Package: "com.example.droid"},
		Log: LogConfig{Level: "info"},
	}
}

// LoadOptional reads droid.yaml from dir if present. A missing file yields
// the defaults; a malformed file is an error.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if strings.TrimSpace(cfg.App.Name) == "" {
		cfg.App.Name = Default().App.Name
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = Default().Log.Level
	}
	return cfg, nil
}

// Load reads droid.yaml from dir (if present) and applies DROID_*
// environment overrides on top.
func Load(dir string) (*Config, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	var env envOverrides
	if err := envconfig.Process("droid", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.AppName != "" {
		cfg.App.Name = env.AppName
	}
	if env.AppPackage != "" {
		cfg.App.Package = env.AppPackage
	}
	if env.GUI != nil {
		cfg.UI.GUI = *env.GUI
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogDev != nil {
		cfg.Log.Development = *env.LogDev
	}
	return cfg, nil
}
