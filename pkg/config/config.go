// Package config loads the trackd server configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Config is the trackd server configuration.
type Config struct {
	// Port the admin API listens on.
	Port int `yaml:"port"`

	// APIPrefix is prepended to every resource path. Defaults to /api.
	APIPrefix string `yaml:"api_prefix"`

	Log struct {
		// Level: debug, info, warn, error.
		Level string `yaml:"level"`
		// Format: text or json.
		Format string `yaml:"format"`
	} `yaml:"log"`

	CORS struct {
		// AllowedOrigins restricts cross-origin callers. Empty or "*"
		// allows every origin.
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.Port = 8080
	cfg.APIPrefix = "/api"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// Load reads a YAML configuration file and fills unset fields with
// defaults. Returns wrapped sentinel errors for the common failure cases.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if len(data) == 0 {
		return cfg, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if cfg.Port <= 0 {
		cfg.Port = Default().Port
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = Default().APIPrefix
	}
	return cfg, nil
}
