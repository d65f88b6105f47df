// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Tracker  TrackerConfig   `toml:"tracker"`
	Packages []PackageConfig `toml:"packages"`
}

// TrackerConfig maps tracker-related settings.
type TrackerConfig struct {
	Journal *bool   `toml:"journal"`
	Workers *int    `toml:"workers"`
	DBPath  *string `toml:"db-path"`
}

// PackageConfig is one sensor package of the configured batch.
type PackageConfig struct {
	Code string    `toml:"code"`
	Data []float64 `toml:"data"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	for i, pkg := range cfg.Packages {
		if pkg.Code == "" {
			return FileConfig{}, fmt.Errorf("packages[%d]: code is empty", i)
		}
	}
	return cfg, nil
}
