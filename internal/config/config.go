// Package config loads the ttrack configuration file and resolves the
// database location.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration, stored in ~/.ttrack/config.json.
type Config struct {
	// DataDir is the directory holding the database file.
	DataDir string `json:"data_dir"`
}

// DatabasePath returns the location of the SQLite database.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "ttrack.db")
}

func defaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return Config{DataDir: filepath.Join(home, ".ttrack")}, nil
}

// Load reads ~/.ttrack/config.json. A missing file yields the defaults;
// fields left empty in the file are filled with defaults as well.
func Load() (Config, error) {
	defaults, err := defaultConfig()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(defaults.DataDir, "config.json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	return cfg, nil
}
