package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults read from the YAML config file.
type Config struct {
	URLs         []string `yaml:"urls"`
	Paths        []string `yaml:"paths"`
	CacheDir     string   `yaml:"cache_dir"`
	CacheTTLDays int      `yaml:"cache_ttl_days"`
}

// LoadConfig reads the config file at path.
// A missing file yields an empty config.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.CacheTTLDays < 0 {
		return nil, fmt.Errorf("invalid cache_ttl_days %d in %s", cfg.CacheTTLDays, path)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	if p := os.Getenv("SCALADOC_CONFIG"); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "scaladoc", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "scaladoc", "config.yaml")
}
