// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/visual"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

// ErrUnknownFormat is returned when no translator is registered for a format.
var ErrUnknownFormat = errors.New("unknown format")

// Document is the complete input passed to a translator.
type Document struct {
	Name    string        // base name of the output, e.g. "purchase-order"
	Schema  *xsd.Schema   // parsed schema model
	Nodes   []visual.Node // presentation tree rendered from Schema
	Strings *lang.Service // display strings for layout labels
}

// NewDocument renders schema with s and names the result after source.
func NewDocument(source string, schema *xsd.Schema, s *lang.Service) *Document {
	return &Document{
		Name:    BaseName(source),
		Schema:  schema,
		Nodes:   visual.New(s).Render(schema),
		Strings: s,
	}
}

// BaseName strips the directory and extension from path.
func BaseName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "schema"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
