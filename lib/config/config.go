// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable naming the config file.
const EnvVar = "ETICKETER_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the record service configuration.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Storage configures the SQLite substrate.
	Storage StorageConfig `yaml:"storage"`

	// Per-environment overrides, applied after the base values when
	// Environment matches.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains the fields that can be overridden per
// environment.
type Overrides struct {
	Paths   *PathsConfig   `yaml:"paths,omitempty"`
	Storage *StorageConfig `yaml:"storage,omitempty"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Data is the directory holding the record database. Created on
	// startup if missing.
	Data string `yaml:"data"`

	// Run is the runtime directory for the service socket.
	Run string `yaml:"run"`
}

// StorageConfig configures the SQLite substrate.
type StorageConfig struct {
	// PoolSize is the connection pool size. Zero means the pool
	// default. Writes are serialized by the service regardless; the
	// pool size only affects concurrent read-only queries.
	PoolSize int `yaml:"pool_size"`
}

// Default returns the default configuration: a development setup with
// everything under the user's cache directory.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	root := filepath.Join(homeDir, ".cache", "eticketer")

	return &Config{
		Environment: Development,
		Paths: PathsConfig{
			Data: filepath.Join(root, "data"),
			Run:  filepath.Join(root, "run"),
		},
	}
}

// Load loads configuration from the ETICKETER_CONFIG environment
// variable. Fails if the variable is not set; there is no implicit
// default file.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your eticketer.yaml config file, or use --config", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, applies the
// matching environment override section, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}
	if overrides.Paths != nil {
		c.Paths = *overrides.Paths
	}
	if overrides.Storage != nil {
		c.Storage = *overrides.Storage
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if c.Paths.Data == "" {
		return fmt.Errorf("paths.data is required")
	}
	if c.Paths.Run == "" {
		return fmt.Errorf("paths.run is required")
	}
	if c.Storage.PoolSize < 0 {
		return fmt.Errorf("storage.pool_size must not be negative")
	}
	return nil
}

// EnsurePaths creates the data and run directories if missing.
func (c *Config) EnsurePaths() error {
	for _, dir := range []string{c.Paths.Data, c.Paths.Run} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the record database file path.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.Data, "records.db")
}

// SocketPath returns the service socket path.
func (c *Config) SocketPath() string {
	return filepath.Join(c.Paths.Run, "eticketer.sock")
}
