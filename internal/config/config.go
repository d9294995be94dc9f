// Package config loads the optional .rejx.yaml file and merges it with
// environment overrides. Flags still win over everything; the CLI applies
// them on top of the value returned by Load.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no --config flag is given.
const DefaultFileName = ".rejx.yaml"

// Config holds the persistent settings of the tool.
type Config struct {
	// Ignore lists regular expressions; a .rej file whose relative path
	// matches any of them is skipped during discovery.
	Ignore []string `yaml:"ignore"`
	// IncludeHidden also discovers dot-files and files under dot-directories.
	IncludeHidden bool `yaml:"include_hidden"`
	// Strict fails fast on malformed hunk headers instead of tolerating them.
	Strict bool `yaml:"strict"`

	Log struct {
		// Path of an optional JSON log file.
		Path string `yaml:"path"`
		// Verbose enables debug-level console output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"log"`
}

// Load reads path (or DefaultFileName when path is empty), validates it
// against the config schema and applies environment overrides. A missing
// file is not an error; the zero config plus environment is returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if doc != nil {
			if err := validateDocument(doc); err != nil {
				return nil, fmt.Errorf("invalid config %s: %w", path, err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file is fine.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv layers REJX_* environment variables (possibly sourced from a
// .env file) over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("REJX_LOG"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("REJX_VERBOSE"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Verbose = parsed
		}
	}
}
