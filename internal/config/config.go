// Package config loads the tool configuration from a yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config
// file is named explicitly.
const DefaultFileName = "hrdb.yml"

type DatabaseConfig struct {
	// Type is the adapter type alias, e.g. "sqlite", "postgres" or "mysql".
	Type string `yaml:"type"`
	// URL is the connection url, or the file path for sqlite.
	URL string `yaml:"url"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	// Queries is the path of the sql script used by "query run-all".
	Queries string `yaml:"queries"`
}

func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Type: "sqlite",
			URL:  "hr_database.db",
		},
		Queries: "queries.sql",
	}
}

// Load reads the configuration at path. An empty path falls back to
// DefaultFileName, and a missing default file yields the built-in
// defaults; a missing explicitly named file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if config.Database.Type == "" {
		return nil, errors.New("database type cannot be empty")
	}
	if config.Database.URL == "" {
		return nil, errors.New("database url cannot be empty")
	}
	if config.Queries == "" {
		config.Queries = Default().Queries
	}

	return config, nil
}
