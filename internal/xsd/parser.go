// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xsd

import (
	"strings"

	"aqwari.net/xml/xmltree"
	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/xmldoc"
	"github.com/hashicorp/go-hclog"
)

// Namespace is the XML Schema namespace URI.
const Namespace = "http://www.w3.org/2001/XMLSchema"

// Node names.
const (
	nodeSchema      = "schema"
	nodeAnnotation  = "annotation"
	nodeElement     = "element"
	nodeSimpleType  = "simpleType"
	nodeComplexType = "complexType"

	nodeRestriction = "restriction"
	nodeList        = "list"
	nodeUnion       = "union"

	nodeEnumeration  = "enumeration"
	nodePattern      = "pattern"
	nodeMinInclusive = "minInclusive"
	nodeMaxInclusive = "maxInclusive"
	nodeMinExclusive = "minExclusive"
	nodeMaxExclusive = "maxExclusive"

	nodeAll      = "all"
	nodeChoice   = "choice"
	nodeSequence = "sequence"
)

// Attribute names.
const (
	attrName      = "name"
	attrType      = "type"
	attrBase      = "base"
	attrValue     = "value"
	attrMinOccurs = "minOccurs"
	attrMaxOccurs = "maxOccurs"

	attrTargetNamespace = "targetNamespace"
)

// Display string keys for the generic names of anonymous types.
const (
	KeySimpleTypeName  = "parser.types.simple_type"
	KeyComplexTypeName = "parser.types.complex_type"
)

// Option configures Parse.
type Option func(*parser)

// WithStrings sets the service used for the generic names of anonymous types.
func WithStrings(s *lang.Service) Option {
	return func(p *parser) { p.strings = s }
}

// WithLogger sets the logger that records skipped nodes and type overwrites.
func WithLogger(l hclog.Logger) Option {
	return func(p *parser) { p.log = l }
}

type parser struct {
	strings *lang.Service
	log     hclog.Logger
	types   Types
}

// ParseBytes loads data as an XML document and parses it.
func ParseBytes(data []byte, opts ...Option) (*Schema, error) {
	root, err := xmldoc.Load(data)
	if err != nil {
		return nil, err
	}
	return Parse(root, opts...)
}

// Parse builds a Schema from the root element of a schema document.
// Unknown nodes and attributes are skipped; the only errors are a missing
// strings service and a root that is not an XML Schema root.
func Parse(root *xmltree.Element, opts ...Option) (*Schema, error) {
	p := &parser{types: make(Types)}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = hclog.NewNullLogger()
	}
	if p.strings == nil {
		s, err := lang.New()
		if err != nil {
			return nil, err
		}
		p.strings = s
	}

	if strings.ToLower(root.Name.Local) != nodeSchema || root.Name.Space != Namespace {
		return nil, &ShapeError{Name: root.Name}
	}

	schema := &Schema{Types: p.types}
	schema.NamespacePrefix, _ = xmldoc.PrefixFor(root, Namespace)
	schema.TargetNamespace = root.Attr("", attrTargetNamespace)

	for _, child := range xmldoc.Elements(root) {
		switch child.Name.Local {
		case nodeElement:
			schema.Structure = append(schema.Structure, p.element(child))
		case nodeSimpleType:
			p.define(p.simpleType(child))
		case nodeComplexType:
			p.define(p.complexType(child))
		default:
			p.log.Debug("skipping top-level node", "node", child.Name.Local)
		}
	}

	p.log.Debug("schema parsed", "elements", len(schema.Structure), "types", len(schema.Types))
	return schema, nil
}

// define stores a named type; a later declaration with the same name wins.
func (p *parser) define(t Type) {
	if _, exists := p.types[t.TypeName()]; exists {
		p.log.Debug("type redefined, keeping the later declaration", "type", t.TypeName())
	}
	p.types[t.TypeName()] = t
}

func (p *parser) element(node *xmltree.Element) *Element {
	el := NewElement()
	if extra, ok := readAttrs(node, el.setAttr); ok {
		el.Attributes = extra
	}

	for _, child := range xmldoc.Elements(node) {
		switch child.Name.Local {
		case nodeAnnotation:
			el.Annotation = strings.TrimSpace(xmldoc.TextContent(child))
		case nodeSimpleType:
			el.Type = OwnedType(p.simpleType(child))
		case nodeComplexType:
			el.Type = OwnedType(p.complexType(child))
		}
	}
	return el
}

func (p *parser) simpleType(node *xmltree.Element) *SimpleType {
	st := &SimpleType{Name: p.strings.Get(KeySimpleTypeName)}
	if extra, ok := readAttrs(node, st.setAttr); ok {
		st.Attributes = extra
	}

	for _, child := range xmldoc.Elements(node) {
		switch child.Name.Local {
		case nodeAnnotation:
			st.Annotation = strings.TrimSpace(xmldoc.TextContent(child))
		case nodeRestriction:
			p.restriction(st, child)
		case nodeList, nodeUnion:
			p.log.Debug("simple type derivation not supported", "node", child.Name.Local)
		}
	}
	return st
}

func (p *parser) restriction(st *SimpleType, node *xmltree.Element) {
	if extra, ok := readAttrs(node, st.setAttr); ok {
		st.Attributes = extra
	}

	st.Values = nil
	for _, facet := range xmldoc.Elements(node) {
		value := facet.Attr("", attrValue)
		switch facet.Name.Local {
		case nodeEnumeration:
			st.Values = append(st.Values, value)
		case nodePattern:
			st.Pattern = value
		case nodeMinInclusive:
			st.MinInclusive = value
		case nodeMaxInclusive:
			st.MaxInclusive = value
		case nodeMinExclusive:
			st.MinExclusive = value
		case nodeMaxExclusive:
			st.MaxExclusive = value
		}
	}
}

func (p *parser) complexType(node *xmltree.Element) *ComplexType {
	ct := NewComplexType()
	ct.Name = p.strings.Get(KeyComplexTypeName)
	if extra, ok := readAttrs(node, ct.setAttr); ok {
		ct.Attributes = extra
	}

	for _, child := range xmldoc.Elements(node) {
		switch child.Name.Local {
		case nodeAnnotation:
			ct.Annotation = strings.TrimSpace(xmldoc.TextContent(child))
			continue
		case nodeAll:
			ct.Kind = GroupAll
		case nodeChoice:
			ct.Kind = GroupChoice
		case nodeSequence:
			// Only a sequence carries its own occurrence bounds onto the type.
			ct.Kind = GroupSequence
			if extra, ok := readAttrs(child, ct.setAttr); ok {
				ct.Attributes = extra
			}
		default:
			continue
		}
		ct.Children = p.groupChildren(child)
	}
	return ct
}

func (p *parser) groupChildren(group *xmltree.Element) []*Element {
	var children []*Element
	for _, option := range xmldoc.Elements(group) {
		if option.Name.Local == nodeElement {
			children = append(children, p.element(option))
		}
	}
	return children
}

// readAttrs feeds every attribute of node to set and collects the ones set
// does not recognise. ok is false when node has no attributes at all, in
// which case the caller keeps its previous attribute map.
func readAttrs(node *xmltree.Element, set func(name, value string) bool) (extra map[string]string, ok bool) {
	attrs := xmldoc.Attrs(node)
	if len(attrs) == 0 {
		return nil, false
	}
	for _, a := range attrs {
		if set(a.Name.Local, a.Value) {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[a.Name.Local] = a.Value
	}
	return extra, true
}

func (e *Element) setAttr(name, value string) bool {
	switch name {
	case attrName:
		e.Name = value
	case attrType:
		e.Type = NamedType(localName(value))
	case attrMinOccurs:
		e.MinOccurs = parseCount(value)
	case attrMaxOccurs:
		e.MaxOccurs = ParseOccurs(value)
	case attrBase:
	default:
		return false
	}
	return true
}

func (t *SimpleType) setAttr(name, value string) bool {
	switch name {
	case attrName:
		t.Name = value
	case attrBase:
		t.BaseType = localName(value)
	case attrType, attrMinOccurs, attrMaxOccurs:
	default:
		return false
	}
	return true
}

func (t *ComplexType) setAttr(name, value string) bool {
	switch name {
	case attrName:
		t.Name = value
	case attrMinOccurs:
		t.MinOccurs = parseCount(value)
	case attrMaxOccurs:
		t.MaxOccurs = ParseOccurs(value)
	case attrType, attrBase:
	default:
		return false
	}
	return true
}

// localName drops the namespace prefix of a qualified name, so "xs:string"
// becomes "string" and "tns:Address" becomes "Address".
func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
