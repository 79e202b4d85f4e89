// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro provides Apache Avro schema translation utilities.
package avro

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

const defaultNamespace = "schemas"

// Translator translates schemas to Apache Avro schema definitions.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "avro"
}

// FileExtension returns the file extension for Avro schema files.
func (t *Translator) FileExtension() string {
	return ".avsc"
}

// avroRecord represents an Avro record schema.
type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Doc       string      `json:"doc,omitempty"`
	Fields    []avroField `json:"fields"`
}

// avroField represents a field within an Avro record.
type avroField struct {
	Name string `json:"name"`
	Doc  string `json:"doc,omitempty"`
	Type any    `json:"type"`
}

// avroArray represents an Avro array type.
type avroArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

// avroEnum represents an Avro enum type.
type avroEnum struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Doc     string   `json:"doc,omitempty"`
	Symbols []string `json:"symbols"`
}

// avroLogicalType represents an Avro logical type.
type avroLogicalType struct {
	Type        string `json:"type"`
	LogicalType string `json:"logicalType"`
}

// Translate converts a schema to an Avro schema JSON document. The root record
// has one field per top-level element. Named types are declared inline at
// their first use and referenced by name afterwards, which keeps recursive
// types finite.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	b := &builder{
		types:   doc.Schema.Types,
		names:   translate.Namer{},
		named:   make(map[string]string),
		inlined: make(map[string]bool),
	}

	rootName := b.typeName(doc.Name+"-schema", "Schema")
	root := avroRecord{
		Type:      "record",
		Name:      rootName,
		Namespace: namespace(doc.Schema.TargetNamespace),
		Fields:    b.fields(doc.Schema.Structure, rootName, false),
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Avro schema: %w", err)
	}

	return append(out, '\n'), nil
}

type builder struct {
	types   xsd.Types
	names   translate.Namer
	named   map[string]string // schema type name -> Avro name
	inlined map[string]bool
}

// fields converts elements to avroFields. Every field of a choice is
// nullable since only one of them is present.
func (b *builder) fields(els []*xsd.Element, parent string, choice bool) []avroField {
	result := make([]avroField, 0, len(els))
	seen := translate.Namer{}
	for _, el := range els {
		avroType := b.elementType(el, parent)
		switch {
		case el.MaxOccurs.IsUnbounded() || el.MaxOccurs > 1:
			avroType = avroArray{Type: "array", Items: avroType}
		case el.MinOccurs == 0 || choice:
			avroType = []any{"null", avroType}
		}
		result = append(result, avroField{
			Name: seen.Unique(fieldName(el.Name)),
			Doc:  el.Annotation,
			Type: avroType,
		})
	}
	return result
}

func (b *builder) elementType(el *xsd.Element, parent string) any {
	if name, ok := el.Type.Name(); ok {
		if _, found := b.types[name]; found {
			return b.namedType(name)
		}
		return primitive(name)
	}

	switch t := el.Type.Owned().(type) {
	case *xsd.ComplexType:
		return b.record(b.typeName(parent+"-"+el.Name, "Field"), t)
	case *xsd.SimpleType:
		return b.simple("", t)
	}
	return "string"
}

// namedType declares the named type at its first use and refers to it by
// name afterwards.
func (b *builder) namedType(name string) any {
	avroName, ok := b.named[name]
	if !ok {
		avroName = b.typeName(name, "Type")
		b.named[name] = avroName
	}

	t := b.types[name]
	if b.inlined[name] {
		if st, ok := t.(*xsd.SimpleType); ok && !b.isEnum(st) {
			return b.simple("", st)
		}
		return avroName
	}
	b.inlined[name] = true

	switch t := t.(type) {
	case *xsd.ComplexType:
		return b.record(avroName, t)
	case *xsd.SimpleType:
		return b.simple(avroName, t)
	}
	return "string"
}

func (b *builder) record(name string, t *xsd.ComplexType) avroRecord {
	return avroRecord{
		Type:   "record",
		Name:   name,
		Doc:    t.Annotation,
		Fields: b.fields(t.Children, name, t.Kind == xsd.GroupChoice),
	}
}

// simple maps a simple type to an enum when it enumerates valid symbols and
// a name is available, and to its underlying primitive otherwise.
func (b *builder) simple(name string, t *xsd.SimpleType) any {
	if name != "" && b.isEnum(t) {
		return avroEnum{Type: "enum", Name: name, Doc: t.Annotation, Symbols: t.Values}
	}
	return primitive(b.builtinBase(t))
}

func (b *builder) isEnum(t *xsd.SimpleType) bool {
	if len(t.Values) == 0 || primitive(b.builtinBase(t)) != "string" {
		return false
	}
	seen := make(map[string]bool, len(t.Values))
	for _, v := range t.Values {
		if !validName(v) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// builtinBase follows base types through the type table down to a built-in
// type name.
func (b *builder) builtinBase(t *xsd.SimpleType) string {
	visited := make(map[string]bool)
	for t.BaseType != "" && !visited[t.BaseType] {
		visited[t.BaseType] = true
		next, ok := b.types[t.BaseType].(*xsd.SimpleType)
		if !ok {
			return t.BaseType
		}
		t = next
	}
	return "string"
}

// typeName returns an unused Avro type name derived from s.
func (b *builder) typeName(s, fallback string) string {
	return b.names.Unique(fieldName(translate.Identifier(s, fallback)))
}
