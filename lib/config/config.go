// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the academy client.
//
// Configuration is loaded from a single YAML file named by the
// ACADEMY_CONFIG environment variable. When it is unset, built-in
// defaults apply (a local development
// repository at http://localhost:1337). Environment variables do not
// override individual config values — the file is the single source of
// truth, which keeps configuration deterministic and auditable.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultRepositoryURL is the content repository used when no config
// file is present. Matches the local development deployment.
const defaultRepositoryURL = "http://localhost:1337"

// Config is the client configuration for the academy CLI.
type Config struct {
	// Repository configures access to the content repository.
	Repository RepositoryConfig `yaml:"repository"`
}

// RepositoryConfig configures the content repository endpoints.
type RepositoryConfig struct {
	// BaseURL is the root URL of the content repository's REST API
	// (e.g. "http://localhost:1337"). Paths like /api/courses are
	// appended to it.
	BaseURL string `yaml:"base_url"`

	// MediaOrigin is the base URL for host-relative media paths.
	// Defaults to BaseURL when empty — repositories that serve
	// uploads from a CDN set this separately.
	MediaOrigin string `yaml:"media_origin"`
}

// Default returns the default configuration. These defaults make the
// client usable against a local development repository with no config
// file at all.
func Default() *Config {
	return &Config{
		Repository: RepositoryConfig{
			BaseURL: defaultRepositoryURL,
		},
	}
}

// Load loads configuration from the path in ACADEMY_CONFIG, or returns
// the defaults when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv("ACADEMY_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	configuration := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, configuration); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return configuration, nil
}

// MediaOrigin returns the effective origin for relative media paths:
// the configured media origin, or the repository base URL when unset.
func (c *Config) MediaOrigin() string {
	if c.Repository.MediaOrigin != "" {
		return c.Repository.MediaOrigin
	}
	return c.Repository.BaseURL
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Repository.BaseURL == "" {
		errs = append(errs, fmt.Errorf("repository.base_url is required"))
	} else if !strings.HasPrefix(c.Repository.BaseURL, "http://") &&
		!strings.HasPrefix(c.Repository.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("repository.base_url must be an http or https URL (got %q)", c.Repository.BaseURL))
	}

	if c.Repository.MediaOrigin != "" &&
		!strings.HasPrefix(c.Repository.MediaOrigin, "http://") &&
		!strings.HasPrefix(c.Repository.MediaOrigin, "https://") {
		errs = append(errs, fmt.Errorf("repository.media_origin must be an http or https URL (got %q)", c.Repository.MediaOrigin))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
