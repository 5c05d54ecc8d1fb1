// Package config loads the optional jot.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name looked up by Find.
const FileName = "jot.yaml"

// Config mirrors jot.yaml. Zero values mean "not set"; command-line flags
// take precedence over anything set here.
type Config struct {
	Adapter    string   `yaml:"adapter,omitempty"`
	Path       string   `yaml:"path,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	Verbose    bool     `yaml:"verbose,omitempty"`
	ReadOnly   bool     `yaml:"read_only,omitempty"`
}

// Load reads the config file at path. A missing file yields an empty Config.
// A relative Path inside the file is resolved against the file's directory.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Path != "" && !filepath.IsAbs(cfg.Path) {
		cfg.Path = filepath.Join(filepath.Dir(path), cfg.Path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Find looks upwards from startDir for a directory containing FileName and
// returns the path of that file.
func Find(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found", FileName)
}

// DefaultDataDir is $XDG_DATA_HOME/jot, falling back to ~/.local/share/jot.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "jot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jot"
	}
	return filepath.Join(home, ".local", "share", "jot")
}
