// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package yamltree serialises the presentation tree as YAML.
package yamltree

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/visual"
)

// Tree is the serialised form of a rendered document.
type Tree struct {
	Name     string        `yaml:"name"`
	Language string        `yaml:"language"`
	Nodes    []visual.Node `yaml:"nodes"`
}

// Translator renders documents as YAML.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "yaml"
}

// FileExtension returns the file extension for YAML files.
func (t *Translator) FileExtension() string {
	return ".yaml"
}

// Translate encodes the presentation tree of doc.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Tree{Name: doc.Name, Language: doc.Strings.Language(), Nodes: doc.Nodes}); err != nil {
		return nil, fmt.Errorf("failed to encode tree: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode tree: %w", err)
	}
	return buf.Bytes(), nil
}
