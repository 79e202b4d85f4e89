// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides configuration, display strings, and logging
// for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/dacolabs/xsdvis/internal/config"
	"github.com/dacolabs/xsdvis/internal/lang"
)

var (
	// ErrInvalidConfig indicates the configuration could not be read or is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedLanguage indicates no string table matches the requested language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrNotLoaded indicates a command ran without a loaded session.
	ErrNotLoaded = errors.New("session not loaded")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and shared services.
type Context struct {
	// Config is the resolved configuration with flag overrides applied.
	Config *config.Config

	// Strings serves display strings in the configured language.
	Strings *lang.Service

	// Logger receives diagnostic output. It discards everything unless
	// verbose logging was requested.
	Logger hclog.Logger
}

// Options are the command-line overrides applied on top of the configuration.
type Options struct {
	ConfigPath string
	Language   string
	Verbose    bool
	LogOutput  io.Writer
}

// Load resolves the configuration from the current working directory and
// returns a new context.Context with the session Context stored in it.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Resolve(cwd, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if opts.Language != "" {
		cfg.Language = opts.Language
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	texts, err := lang.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load display strings: %w", err)
	}
	if !texts.SetLanguage(cfg.Language) {
		return nil, fmt.Errorf("%w: %s (available: %s)",
			ErrUnsupportedLanguage, cfg.Language, strings.Join(texts.Available(), ", "))
	}

	logger := newLogger(opts)
	logger.Debug("session loaded", "language", texts.Language(), "format", cfg.Format)

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:  cfg,
		Strings: texts,
		Logger:  logger,
	}), nil
}

func newLogger(opts Options) hclog.Logger {
	if !opts.Verbose {
		return hclog.NewNullLogger()
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "xsdvis",
		Level:  hclog.Debug,
		Output: out,
	})
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sc, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sc
	}
	return nil
}
