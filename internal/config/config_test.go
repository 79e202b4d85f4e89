// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Default()
	cfg.Language = "ru"
	cfg.Format = "markdown"

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			mutate:  func(c *Config) { c.Version = 99 },
			wantErr: "unsupported config version",
		},
		{
			name:    "missing language",
			mutate:  func(c *Config) { c.Language = "" },
			wantErr: "language is required",
		},
		{
			name:    "missing format",
			mutate:  func(c *Config) { c.Format = "" },
			wantErr: "format is required",
		},
		{
			name:    "zero cache size",
			mutate:  func(c *Config) { c.Server.CacheSize = 0 },
			wantErr: "cache size must be positive",
		},
		{
			name:    "zero body limit",
			mutate:  func(c *Config) { c.Server.MaxBodyBytes = 0 },
			wantErr: "body limit must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	require.NoError(t, Default().Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "language: en")
	assert.Contains(t, output, "server:\n  addr: ")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "docs", cfg.Output)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 16, cfg.Server.CacheSize)
	assert.Equal(t, int64(4<<20), cfg.Server.MaxBodyBytes, "missing values take their defaults")
}

func TestConfig_Load_EnvOverridesFile(t *testing.T) {
	t.Setenv("XSDVIS_FORMAT", "json")

	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	err := Default().Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	t.Run("file present", func(t *testing.T) {
		cfg, err := Resolve("testdata", "testdata/valid.yaml")
		require.NoError(t, err)
		assert.Equal(t, "ru", cfg.Language)
	})

	t.Run("environment only", func(t *testing.T) {
		t.Setenv("XSDVIS_LANG", "ru")
		t.Setenv("XSDVIS_SERVER_CACHE_SIZE", "4")

		cfg, err := Resolve(t.TempDir(), "")
		require.NoError(t, err)
		assert.Equal(t, "ru", cfg.Language)
		assert.Equal(t, 4, cfg.Server.CacheSize)
		assert.Equal(t, "html", cfg.Format)
		require.NoError(t, cfg.Validate())
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Resolve(t.TempDir(), "testdata/nonexistent.yaml")
		assert.Error(t, err)
	})

	t.Run("defaults match", func(t *testing.T) {
		cfg, err := Resolve(t.TempDir(), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}
