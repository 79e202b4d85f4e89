// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles xsdvis configuration.
//
// Settings come from xsdvis.yaml when present, otherwise from XSDVIS_*
// environment variables. Environment variables override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the xsdvis configuration file.
const FileName = "xsdvis.yaml"

// Config represents the xsdvis.yaml configuration file.
type Config struct {
	Version  int    `yaml:"version" env:"XSDVIS_CONFIG_VERSION" env-default:"1"`
	Language string `yaml:"language" env:"XSDVIS_LANG" env-default:"en"`
	Format   string `yaml:"format" env:"XSDVIS_FORMAT" env-default:"html"`
	Output   string `yaml:"output" env:"XSDVIS_OUTPUT" env-default:"."`
	Server   Server `yaml:"server"`
}

// Server configures the HTTP render service.
type Server struct {
	Addr string `yaml:"addr" env:"XSDVIS_SERVER_ADDR" env-default:":8080"`
	// CacheSize is the number of parsed schemas kept in memory.
	CacheSize int `yaml:"cacheSize" env:"XSDVIS_SERVER_CACHE_SIZE" env-default:"128"`
	// MaxBodyBytes limits the size of a submitted schema.
	MaxBodyBytes int64 `yaml:"maxBodyBytes" env:"XSDVIS_SERVER_MAX_BODY_BYTES" env-default:"4194304"`
}

// Default returns the configuration used when no file or variables are set.
func Default() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Language: "en",
		Format:   "html",
		Output:   ".",
		Server: Server{
			Addr:         ":8080",
			CacheSize:    128,
			MaxBodyBytes: 4 << 20,
		},
	}
}

// Load reads a Config from a file path, applying environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv reads a Config from environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads an explicit path, or FileName in dir when path is empty.
// A missing FileName falls back to the environment.
func Resolve(dir, path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	path = filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return LoadEnv()
	}
	return Load(path)
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Language == "" {
		return errors.New("language is required")
	}
	if c.Format == "" {
		return errors.New("format is required")
	}
	if c.Server.CacheSize < 1 {
		return fmt.Errorf("server cache size must be positive, got %d", c.Server.CacheSize)
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("server body limit must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}
