// Package config handles untitled's paths and optional configuration
// file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultProcessName is the process whose windows are decorated.
const DefaultProcessName = "firefox"

// DefaultInterval is the re-apply interval for watch mode.
const DefaultInterval = time.Second

// Paths holds the file locations used by untitled.
type Paths struct {
	Home    string
	Config  string
	Logs    string
	HostLog string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	appHome := filepath.Join(home, ".untitled")
	logsDir := filepath.Join(appHome, "logs")
	return &Paths{
		Home:    appHome,
		Config:  filepath.Join(appHome, "config.yaml"),
		Logs:    logsDir,
		HostLog: filepath.Join(logsDir, "host.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the optional on-disk configuration. Every field has a
// default; an absent file is not an error.
type Config struct {
	ProcessName     string    `yaml:"process_name"`
	IntervalSeconds int       `yaml:"interval_seconds"`
	Log             LogConfig `yaml:"log"`
}

// Default returns the built-in configuration.
func Default(paths *Paths) *Config {
	return &Config{
		ProcessName:     DefaultProcessName,
		IntervalSeconds: int(DefaultInterval / time.Second),
		Log: LogConfig{
			Enabled: false,
			Path:    paths.HostLog,
		},
	}
}

// Load reads the config file at path, falling back to defaults for a
// missing file and for any field left unset. A file that exists but does
// not parse is an error.
func Load(path string, paths *Paths) (*Config, error) {
	cfg := Default(paths)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ProcessName == "" {
		cfg.ProcessName = DefaultProcessName
	}
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = int(DefaultInterval / time.Second)
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = paths.HostLog
	}
	return cfg, nil
}

// Interval returns the watch-mode re-apply interval.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
