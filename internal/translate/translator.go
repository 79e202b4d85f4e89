// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns rendered schemas into output documents.
package translate

import (
	"fmt"
	"sort"
)

// Translator defines the interface all output formats must implement.
type Translator interface {
	// Name returns the format identifier (e.g., "html", "jsonschema")
	Name() string

	// FileExtension returns the appropriate file extension (e.g., ".html", ".md")
	FileExtension() string

	// Translate writes doc in the target format
	Translate(doc *Document) ([]byte, error)
}

// Register maps format names to translators.
type Register map[string]Translator

// Add registers t under its name, replacing any previous translator.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return t, nil
}

// Available returns all registered format names in sorted order.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
