package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML layout. Pointers distinguish unset keys from
// zero values.
type fileConfig struct {
	Width    *int    `yaml:"width"`
	Height   *int    `yaml:"height"`
	TickRate *string `yaml:"tick_rate"`
	Manager  *string `yaml:"manager"`
	Output   *string `yaml:"output"`
	Trace    *bool   `yaml:"trace"`
	LogFile  *string `yaml:"log_file"`

	loaded bool
}

func defaultConfigPath(env map[string]string) string {
	base := strings.TrimSpace(env["XDG_CONFIG_HOME"])
	if base == "" {
		home := strings.TrimSpace(env["HOME"])
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pkgpick", "config.yaml")
}

// loadFile reads path. A missing default file is not an error; a missing
// explicitly requested one is.
func loadFile(path string, explicit bool) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg fileConfig
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.loaded = true
	return cfg, nil
}
