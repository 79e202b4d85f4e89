// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema exports parsed XSD models as JSON Schema documents.
//
// Top-level elements become properties of the root object and named types
// become $defs entries referenced through $ref, so recursive types export
// without expansion.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

// Draft is the JSON Schema dialect written by Export.
const Draft = "https://json-schema.org/draft/2020-12/schema"

const defsPrefix = "#/$defs/"

// Translator renders documents as JSON Schema.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// Translate exports the schema model of doc.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	data, err := json.MarshalIndent(Export(doc.Schema, doc.Name), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON schema: %w", err)
	}
	return append(data, '\n'), nil
}

// Export converts schema into a JSON Schema titled title.
func Export(schema *xsd.Schema, title string) *jsonschema.Schema {
	e := exporter{types: schema.Types}

	root := &jsonschema.Schema{
		Schema: Draft,
		Title:  title,
		Type:   "object",
	}
	if len(schema.Structure) > 0 {
		root.Properties = make(map[string]*jsonschema.Schema, len(schema.Structure))
		for _, el := range schema.Structure {
			root.Properties[el.Name] = e.element(el)
		}
	}
	if len(schema.Types) > 0 {
		root.Defs = make(map[string]*jsonschema.Schema, len(schema.Types))
		for _, name := range schema.Types.Names() {
			root.Defs[name] = e.typ(schema.Types[name])
		}
	}
	return root
}

type exporter struct {
	types xsd.Types
}

func (e *exporter) element(el *xsd.Element) *jsonschema.Schema {
	var s *jsonschema.Schema
	if owned := el.Type.Owned(); owned != nil {
		s = e.typ(owned)
	} else {
		name, _ := el.Type.Name()
		s = e.reference(name)
	}
	if el.Annotation != "" {
		s.Description = el.Annotation
	}

	if el.MaxOccurs <= 1 {
		return s
	}
	arr := &jsonschema.Schema{Type: "array", Items: s}
	if el.MinOccurs > 0 {
		arr.MinItems = jsonschema.Ptr(el.MinOccurs)
	}
	if !el.MaxOccurs.IsUnbounded() {
		arr.MaxItems = jsonschema.Ptr(int(el.MaxOccurs))
	}
	return arr
}

// reference returns a $ref for a named type, the mapped schema for a
// built-in, or an unconstrained schema with a comment for anything else.
func (e *exporter) reference(name string) *jsonschema.Schema {
	if _, ok := e.types[name]; ok {
		return &jsonschema.Schema{Ref: defsPrefix + name}
	}
	s := primitive(name)
	if !builtin(name) && name != "" {
		s.Comment = "unresolved type " + name
	}
	return s
}

func (e *exporter) typ(t xsd.Type) *jsonschema.Schema {
	switch t := t.(type) {
	case *xsd.SimpleType:
		return e.simple(t)
	case *xsd.ComplexType:
		return e.complex(t)
	}
	return &jsonschema.Schema{}
}

func (e *exporter) simple(t *xsd.SimpleType) *jsonschema.Schema {
	var s *jsonschema.Schema
	if _, ok := e.types[t.BaseType]; ok {
		s = &jsonschema.Schema{AllOf: []*jsonschema.Schema{{Ref: defsPrefix + t.BaseType}}}
	} else {
		s = primitive(t.BaseType)
	}
	s.Description = t.Annotation

	numeric := s.Type == "integer" || s.Type == "number"
	for _, v := range t.Values {
		s.Enum = append(s.Enum, enumValue(v, numeric))
	}
	s.Pattern = t.Pattern

	bounds := []struct {
		value string
		dst   **float64
	}{
		{t.MinInclusive, &s.Minimum},
		{t.MaxInclusive, &s.Maximum},
		{t.MinExclusive, &s.ExclusiveMinimum},
		{t.MaxExclusive, &s.ExclusiveMaximum},
	}
	for _, b := range bounds {
		if f, err := strconv.ParseFloat(b.value, 64); err == nil {
			*b.dst = &f
		}
	}
	return s
}

func (e *exporter) complex(t *xsd.ComplexType) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "object", Description: t.Annotation}
	if t.Kind == xsd.GroupChoice {
		for _, child := range t.Children {
			alt := &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{child.Name: e.element(child)},
			}
			if child.MinOccurs > 0 {
				alt.Required = []string{child.Name}
			}
			s.OneOf = append(s.OneOf, alt)
		}
		return s
	}

	if len(t.Children) == 0 {
		return s
	}
	s.Properties = make(map[string]*jsonschema.Schema, len(t.Children))
	for _, child := range t.Children {
		s.Properties[child.Name] = e.element(child)
		if child.MinOccurs > 0 {
			s.Required = append(s.Required, child.Name)
		}
	}
	return s
}

func enumValue(v string, numeric bool) any {
	if numeric {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}
