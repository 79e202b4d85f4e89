// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

// loadSchema reads and parses the schema file at path.
func loadSchema(ctx *session.Context, path string) (*xsd.Schema, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	ctx.Logger.Debug("parsing schema", "path", path, "bytes", len(data))
	schema, err := xsd.ParseBytes(data,
		xsd.WithStrings(ctx.Strings),
		xsd.WithLogger(ctx.Logger.Named("parser")))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := schema.CheckFinite(); err != nil {
		return nil, fmt.Errorf("cannot render %s: %w", path, err)
	}
	return schema, nil
}
