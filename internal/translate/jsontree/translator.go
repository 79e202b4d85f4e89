// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsontree serialises the presentation tree as JSON.
package jsontree

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/visual"
)

// Tree is the serialised form of a rendered document.
type Tree struct {
	Name     string        `json:"name"`
	Language string        `json:"language"`
	Nodes    []visual.Node `json:"nodes"`
}

// Translator renders documents as indented JSON.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "json"
}

// FileExtension returns the file extension for JSON files.
func (t *Translator) FileExtension() string {
	return ".json"
}

// Translate encodes the presentation tree of doc.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	nodes := doc.Nodes
	if nodes == nil {
		nodes = []visual.Node{}
	}
	data, err := json.MarshalIndent(Tree{Name: doc.Name, Language: doc.Strings.Language(), Nodes: nodes}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree: %w", err)
	}
	return append(data, '\n'), nil
}
