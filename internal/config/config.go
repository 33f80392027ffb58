// Package config loads the .graft.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/graft/internal/adapter"
	"github.com/mouse-blink/graft/internal/domain"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".graft.yaml"

// DefaultHistory is where watch passes are recorded unless configured.
const DefaultHistory = ".graft-history.yaml"

// ConfigFile represents the structure of .graft.yaml.
type ConfigFile struct {
	Mode       string   `yaml:"mode"`
	Roots      []string `yaml:"roots"`
	Interval   string   `yaml:"interval"` // Duration string like "500ms", "2s"
	Debounce   string   `yaml:"debounce"`
	Skip       []string `yaml:"skip"`
	Reloadable []string `yaml:"reloadable"`
	History    string   `yaml:"history"`
	Print      bool     `yaml:"print"`
	Log        bool     `yaml:"log"`
	Extensions []string `yaml:"extensions"`
}

// Config is the resolved configuration.
type Config struct {
	Settings   domain.Settings
	Roots      []string
	Interval   time.Duration
	Debounce   time.Duration
	Skip       []string
	Reloadable []string
	History    string
	Print      bool
	Log        bool
	Extensions []string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Settings:   domain.Settings{Enabled: true, CheckAll: true},
		Roots:      []string{"."},
		Interval:   domain.DefaultInterval,
		Debounce:   domain.DefaultDebounce,
		History:    DefaultHistory,
		Extensions: append([]string(nil), adapter.DefaultExtensions...),
	}
}

// Load reads configuration from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return file.ToConfig()
}

// ToConfig converts a ConfigFile to a Config, keeping defaults for unset
// fields.
func (cf *ConfigFile) ToConfig() (*Config, error) {
	config := DefaultConfig()

	if cf.Mode != "" {
		mode, err := domain.ParseMode(cf.Mode)
		if err != nil {
			return nil, fmt.Errorf("invalid mode: %w", err)
		}

		// "now" is a one-shot request, not a standing mode.
		if !mode.Now {
			config.Settings = mode.Settings
		}
	}

	if len(cf.Roots) > 0 {
		config.Roots = cf.Roots
	}

	if cf.Interval != "" {
		d, err := time.ParseDuration(cf.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval: %w", err)
		}

		if d < 0 {
			return nil, fmt.Errorf("invalid interval: %s is negative", cf.Interval)
		}

		config.Interval = d
	}

	if cf.Debounce != "" {
		d, err := time.ParseDuration(cf.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid debounce: %w", err)
		}

		if d <= 0 {
			return nil, fmt.Errorf("invalid debounce: %s is not positive", cf.Debounce)
		}

		config.Debounce = d
	}

	config.Skip = cf.Skip
	config.Reloadable = cf.Reloadable

	if cf.History != "" {
		config.History = cf.History
	}

	config.Print = cf.Print
	config.Log = cf.Log

	if len(cf.Extensions) > 0 {
		config.Extensions = cf.Extensions
	}

	return config, nil
}

// Apply marks the configured skip and reload lists on r.
func (c *Config) Apply(r domain.Reloader) {
	for _, name := range c.Skip {
		r.MarkSkipped(name)
	}

	for _, name := range c.Reloadable {
		r.MarkReloadable(name)
	}
}
