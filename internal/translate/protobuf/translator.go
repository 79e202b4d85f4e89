// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package protobuf provides Protocol Buffers (proto3) schema translation utilities.
package protobuf

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

//go:embed protobuf.proto.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("protobuf.proto.tmpl").Funcs(template.FuncMap{
	"comment": comment,
}).ParseFS(tmplFS, "protobuf.proto.tmpl"))

// Translator translates schemas to Protocol Buffers (proto3) message definitions.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "protobuf"
}

// FileExtension returns the file extension for Protocol Buffers files.
func (t *Translator) FileExtension() string {
	return ".proto"
}

type fileData struct {
	Source         string
	Package        string
	NeedsTimestamp bool
	Enums          []enumDef
	Messages       []messageDef
}

type enumDef struct {
	Name   string
	Doc    string
	Values []enumValue
}

type enumValue struct {
	Name   string
	Number int
}

type messageDef struct {
	Name   string
	Doc    string
	Oneof  string
	Fields []fieldDef
}

type fieldDef struct {
	Label  string
	Type   string
	Name   string
	Number int
	Doc    string
}

// Translate converts a schema to proto3 message definitions. The root
// message has one field per top-level element; named complex types and
// anonymous complex types become messages, and string enumerations become
// enums.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	b := &builder{
		types:   doc.Schema.Types,
		names:   translate.Namer{},
		named:   make(map[string]string),
		visited: make(map[string]bool),
	}
	for _, name := range doc.Schema.Types.Names() {
		b.named[name] = b.names.Unique(messageName(name, "Type"))
	}

	root := b.names.Unique(messageName(doc.Name+"-schema", "Schema"))
	b.messages = append(b.messages, b.message(root, "", doc.Schema.Structure, false))
	for _, name := range doc.Schema.Types.Names() {
		b.declare(name)
	}

	data := &fileData{
		Source:         doc.Name,
		Package:        packageName(doc.Name),
		NeedsTimestamp: b.needsTimestamp,
		Enums:          b.enums,
		Messages:       b.messages,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "protobuf.proto.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

type builder struct {
	types          xsd.Types
	names          translate.Namer
	named          map[string]string // schema type name -> proto name
	visited        map[string]bool
	enums          []enumDef
	messages       []messageDef
	needsTimestamp bool
}

// declare emits the message or enum of a named type once.
func (b *builder) declare(name string) {
	if b.visited[name] {
		return
	}
	b.visited[name] = true

	switch t := b.types[name].(type) {
	case *xsd.ComplexType:
		b.messages = append(b.messages, b.message(b.named[name], t.Annotation, t.Children, t.Kind == xsd.GroupChoice))
	case *xsd.SimpleType:
		if b.isEnum(t) {
			b.enums = append(b.enums, b.enum(b.named[name], t))
		}
	}
}

// message builds a message whose fields are numbered sequentially from 1.
// The fields of a choice form a oneof unless one of them repeats.
func (b *builder) message(name, doc string, children []*xsd.Element, choice bool) messageDef {
	msg := messageDef{Name: name, Doc: doc}
	if choice && !anyRepeated(children) {
		msg.Oneof = "choice"
	}

	seen := translate.Namer{}
	for i, el := range children {
		f := fieldDef{
			Type:   b.elementType(el, name),
			Name:   seen.Unique(fieldName(el.Name)),
			Number: i + 1,
			Doc:    el.Annotation,
		}
		switch {
		case msg.Oneof != "":
		case repeated(el):
			f.Label = "repeated "
		case el.MinOccurs == 0 || choice:
			f.Label = "optional "
		}
		msg.Fields = append(msg.Fields, f)
	}
	return msg
}

func (b *builder) elementType(el *xsd.Element, parent string) string {
	if name, ok := el.Type.Name(); ok {
		switch t := b.types[name].(type) {
		case *xsd.ComplexType:
			return b.named[name]
		case *xsd.SimpleType:
			if b.isEnum(t) {
				return b.named[name]
			}
			return b.scalar(b.builtinBase(t))
		}
		return b.scalar(name)
	}

	switch t := el.Type.Owned().(type) {
	case *xsd.ComplexType:
		name := b.names.Unique(parent + messageName(el.Name, "Field"))
		b.messages = append(b.messages, b.message(name, t.Annotation, t.Children, t.Kind == xsd.GroupChoice))
		return name
	case *xsd.SimpleType:
		return b.scalar(b.builtinBase(t))
	}
	return "string"
}

func (b *builder) scalar(name string) string {
	s := scalar(name)
	if s == timestampType {
		b.needsTimestamp = true
	}
	return s
}

// enum numbers values from 1; proto3 reserves 0 for the unspecified value.
func (b *builder) enum(name string, t *xsd.SimpleType) enumDef {
	prefix := upperSnake(name) + "_"
	seen := translate.Namer{prefix + "UNSPECIFIED": true}
	def := enumDef{
		Name:   name,
		Doc:    t.Annotation,
		Values: []enumValue{{Name: prefix + "UNSPECIFIED"}},
	}
	for i, v := range t.Values {
		symbol := upperSnake(v)
		if symbol == "" {
			symbol = "VALUE"
		}
		def.Values = append(def.Values, enumValue{Name: seen.Unique(prefix + symbol), Number: i + 1})
	}
	return def
}

func (b *builder) isEnum(t *xsd.SimpleType) bool {
	return len(t.Values) > 0 && scalar(b.builtinBase(t)) == "string"
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

func repeated(el *xsd.Element) bool {
	return el.MaxOccurs.IsUnbounded() || el.MaxOccurs > 1
}

func anyRepeated(els []*xsd.Element) bool {
	for _, el := range els {
		if repeated(el) {
			return true
		}
	}
	return false
}

// comment formats doc as a proto comment block indented by indent.
func comment(indent, doc string) string {
	if doc == "" {
		return ""
	}
	var sb strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		sb.WriteString(indent)
		sb.WriteString(strings.TrimRight("// "+strings.TrimSpace(line), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
