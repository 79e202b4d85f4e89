// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes generates Go struct types that decode documents valid
// against a schema with encoding/xml.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("gotypes.go.tmpl").Funcs(template.FuncMap{
	"comment": comment,
}).ParseFS(tmplFS, "gotypes.go.tmpl"))

// Translator translates schemas to Go type definitions.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "gotypes"
}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// Translate generates one Go source file for doc. Named types come first in
// name order, then one struct per top-level element, then structs extracted
// from anonymous complex types.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	data := newGenerator(doc.Schema.Types).file(doc)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

type fileData struct {
	Source    string
	Package   string
	NeedsXML  bool
	NeedsTime bool
	Types     []typeDef
}

// typeDef is either a struct (Fields set) or a defined type over Base.
type typeDef struct {
	Name    string
	Doc     string
	XMLName string
	Base    string
	Choice  bool
	Fields  []field
	Consts  []constant
}

type field struct {
	Name string
	Type string
	Tag  string
	Doc  string
}

type constant struct {
	Name  string
	Value string
}

type generator struct {
	types     xsd.Types
	names     translate.Namer
	goNames   map[string]string
	extracted []typeDef
	needsTime bool
}

func newGenerator(types xsd.Types) *generator {
	return &generator{
		types:   types,
		names:   translate.Namer{},
		goNames: make(map[string]string, len(types)),
	}
}

func (g *generator) file(doc *translate.Document) *fileData {
	names := g.types.Names()
	for _, name := range names {
		g.goNames[name] = g.names.Unique(translate.Identifier(name, "T"))
	}

	data := &fileData{
		Source:  doc.Name,
		Package: packageName(doc.Name),
	}
	for _, name := range names {
		switch t := g.types[name].(type) {
		case *xsd.SimpleType:
			data.Types = append(data.Types, g.simpleDef(g.goNames[name], t))
		case *xsd.ComplexType:
			data.Types = append(data.Types, g.structDef(g.goNames[name], t))
		}
	}
	for _, el := range doc.Schema.Structure {
		data.Types = append(data.Types, g.rootDef(el))
		data.NeedsXML = true
	}
	data.Types = append(data.Types, g.extracted...)
	data.NeedsTime = g.needsTime
	return data
}

func (g *generator) simpleDef(name string, t *xsd.SimpleType) typeDef {
	def := typeDef{Name: name, Doc: t.Annotation, Base: g.simpleBase(t)}
	if def.Base != "string" {
		return def
	}
	consts := translate.Namer{}
	for _, v := range t.Values {
		def.Consts = append(def.Consts, constant{
			Name:  g.names.Unique(consts.Unique(name + translate.Identifier(v, "V"))),
			Value: fmt.Sprintf("%q", v),
		})
	}
	return def
}

func (g *generator) simpleBase(t *xsd.SimpleType) string {
	if t.BaseType == "" {
		return "string"
	}
	if named, ok := g.types[t.BaseType]; ok {
		if _, simple := named.(*xsd.SimpleType); simple {
			return g.goNames[t.BaseType]
		}
		return "string"
	}
	return g.primitive(t.BaseType)
}

func (g *generator) primitive(name string) string {
	p := primitive(name)
	if p == "time.Time" {
		g.needsTime = true
	}
	return p
}

func (g *generator) structDef(name string, t *xsd.ComplexType) typeDef {
	def := typeDef{Name: name, Doc: t.Annotation, Choice: t.Kind == xsd.GroupChoice}
	fields := translate.Namer{"XMLName": true}
	for _, child := range t.Children {
		typ, isStruct := g.fieldType(child, name)
		repeated := child.MaxOccurs.IsUnbounded() || child.MaxOccurs > 1
		optional := child.MinOccurs == 0 || def.Choice

		tag := child.Name
		switch {
		case repeated:
			typ = "[]" + typ
		case isStruct || optional:
			typ = "*" + typ
		}
		if optional || repeated {
			tag += ",omitempty"
		}

		def.Fields = append(def.Fields, field{
			Name: fields.Unique(translate.Identifier(child.Name, "F")),
			Type: typ,
			Tag:  "`xml:\"" + tag + "\"`",
			Doc:  child.Annotation,
		})
	}
	return def
}

// fieldType returns the Go type for el and whether it is a struct. Anonymous
// complex types are extracted into their own struct named after the parent
// and the element.
func (g *generator) fieldType(el *xsd.Element, parent string) (string, bool) {
	if name, ok := el.Type.Name(); ok {
		switch g.types[name].(type) {
		case *xsd.ComplexType:
			return g.goNames[name], true
		case *xsd.SimpleType:
			return g.goNames[name], false
		}
		return g.primitive(name), false
	}

	switch t := el.Type.Owned().(type) {
	case *xsd.ComplexType:
		name := g.names.Unique(parent + translate.Identifier(el.Name, "F"))
		g.extracted = append(g.extracted, g.structDef(name, t))
		return name, true
	case *xsd.SimpleType:
		return g.simpleBase(t), false
	}
	return "string", false
}

// rootDef declares a struct for a top-level element. Fields of an anonymous
// complex type are declared inline and a named complex type is embedded;
// anything else becomes the character data of the element.
func (g *generator) rootDef(el *xsd.Element) typeDef {
	name := translate.Identifier(el.Name, "E")
	if g.names[name] {
		name += "Element"
	}
	name = g.names.Unique(name)

	if ct, ok := el.Type.Owned().(*xsd.ComplexType); ok {
		def := g.structDef(name, ct)
		def.Doc = el.Annotation
		def.XMLName = el.Name
		return def
	}

	def := typeDef{Name: name, Doc: el.Annotation, XMLName: el.Name}
	typ, isStruct := g.fieldType(el, name)
	if isStruct {
		def.Fields = []field{{Type: typ}}
		return def
	}
	def.Fields = []field{{Name: "Value", Type: typ, Tag: "`xml:\",chardata\"`"}}
	return def
}

// comment formats doc as a Go comment block indented by indent.
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
