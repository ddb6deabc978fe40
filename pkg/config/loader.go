package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the YAML file Initialize looks for inside the config
// directory (or uses directly when given a file path).
const ConfigFileName = "conclave.yaml"

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Read conclave.yaml if present (an absent file keeps the defaults)
//  3. Expand environment variables ({{.VAR}} template syntax)
//  4. Merge user values over defaults, field by field
//  5. Build the profile registry
//  6. Validate everything
func Initialize(_ context.Context, path string) (*Config, error) {
	log := slog.With("config_path", path)

	cfg := Default()

	data, found, err := readConfigFile(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	if found {
		data = ExpandEnv(data)
		var user Config
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("merging configuration: %w", err))
		}
	} else {
		log.Info("No configuration file found, using built-in defaults")
	}

	cfg.ProfileRegistry = NewProfileRegistry(cfg.Profiles, cfg.DefaultProfile)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"profiles", len(cfg.Profiles),
		"default_profile", cfg.DefaultProfile,
		"pricing_entries", len(cfg.Pricing))
	return cfg, nil
}

// readConfigFile reads path, treating a missing file as a soft miss rather
// than an error.
func readConfigFile(path string) ([]byte, bool, error) {
	if path == "" {
		path = ConfigFileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}
