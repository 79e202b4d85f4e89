// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package xsd builds a typed model of an XML Schema document: its top-level
// element declarations and the simple and complex types they use.
package xsd

import "sort"

// Type is implemented by *SimpleType and *ComplexType.
type Type interface {
	// TypeName is the declared name, or the generic label of an anonymous type.
	TypeName() string
	// Doc is the type's own annotation.
	Doc() string
	isType()
}

// TypeRef points an Element at its type: either a name looked up in the
// schema's type table, or a type owned by the element itself.
type TypeRef struct {
	name  string
	owned Type
}

// NamedType refers to a type by name.
func NamedType(name string) TypeRef {
	return TypeRef{name: name}
}

// OwnedType embeds an anonymous type.
func OwnedType(t Type) TypeRef {
	return TypeRef{owned: t}
}

// Name returns the referenced type name. ok is false for an owned type.
func (r TypeRef) Name() (name string, ok bool) {
	return r.name, r.owned == nil
}

// Owned returns the embedded type, or nil for a name reference.
func (r TypeRef) Owned() Type {
	return r.owned
}

// Resolve returns the owned type, or looks the name up in types.
func (r TypeRef) Resolve(types Types) (Type, bool) {
	if r.owned != nil {
		return r.owned, true
	}
	t, ok := types[r.name]
	return t, ok
}

// Element is a declared element.
type Element struct {
	Name       string
	Annotation string
	Type       TypeRef
	// Attributes holds schema attributes with no dedicated field; nil when none.
	Attributes map[string]string
	MinOccurs  int
	MaxOccurs  Occurs
}

// NewElement returns an Element with the default occurrence bounds 1..1.
func NewElement() *Element {
	return &Element{MinOccurs: 1, MaxOccurs: 1}
}

// SimpleType is a restriction of a base type.
type SimpleType struct {
	Name       string
	Annotation string
	// BaseType is empty for a restriction of a primitive.
	BaseType string
	// Values lists enumerated values; nil when there is no enumeration.
	Values  []string
	Pattern string
	// Bounds are kept as written in the document.
	MinInclusive string
	MaxInclusive string
	MinExclusive string
	MaxExclusive string
	Attributes   map[string]string
}

func (t *SimpleType) TypeName() string { return t.Name }
func (t *SimpleType) Doc() string      { return t.Annotation }
func (*SimpleType) isType()            {}

// Grouping is the structural grouping kind of a complex type.
type Grouping string

const (
	GroupNone     Grouping = ""
	GroupAll      Grouping = "all"
	GroupChoice   Grouping = "choice"
	GroupSequence Grouping = "sequence"
)

// ComplexType groups child elements.
type ComplexType struct {
	Name       string
	Annotation string
	Kind       Grouping
	// Children is nil when the grouping has no element children.
	Children   []*Element
	MinOccurs  int
	MaxOccurs  Occurs
	Attributes map[string]string
}

// NewComplexType returns a ComplexType with the default occurrence bounds 1..1.
func NewComplexType() *ComplexType {
	return &ComplexType{MinOccurs: 1, MaxOccurs: 1}
}

func (t *ComplexType) TypeName() string { return t.Name }
func (t *ComplexType) Doc() string      { return t.Annotation }
func (*ComplexType) isType()            {}

// Types maps type names to named type definitions.
type Types map[string]Type

// Names returns the type names in sorted order.
func (t Types) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema is the parsed model of one schema document.
type Schema struct {
	// Structure lists top-level elements in document order.
	Structure []*Element
	Types     Types
	// NamespacePrefix is the prefix bound to the XSD namespace on the root.
	NamespacePrefix string
	TargetNamespace string
}

// UnresolvedReferences returns the sorted, distinct type names that elements
// reachable from the schema refer to but that are missing from Types.
func (s *Schema) UnresolvedReferences() []string {
	missing := make(map[string]struct{})
	seen := make(map[string]struct{})

	var visit func(els []*Element)
	visit = func(els []*Element) {
		for _, el := range els {
			if name, ok := el.Type.Name(); ok {
				t, found := s.Types[name]
				if !found {
					missing[name] = struct{}{}
					continue
				}
				if _, done := seen[name]; done {
					continue
				}
				seen[name] = struct{}{}
				if ct, ok := t.(*ComplexType); ok {
					visit(ct.Children)
				}
				continue
			}
			if ct, ok := el.Type.Owned().(*ComplexType); ok {
				visit(ct.Children)
			}
		}
	}
	visit(s.Structure)
	for _, t := range s.Types {
		if ct, ok := t.(*ComplexType); ok {
			visit(ct.Children)
		}
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecursiveTypes returns the sorted names of named complex types found on a
// reference cycle reachable from Structure. It is empty exactly when the
// structure expands to a finite tree.
func (s *Schema) RecursiveTypes() []string {
	recursive := make(map[string]struct{})
	done := make(map[string]struct{})
	onPath := make(map[string]int)
	var path []string

	var visit func(els []*Element)
	visit = func(els []*Element) {
		for _, el := range els {
			name, ok := el.Type.Name()
			if !ok {
				if ct, ok := el.Type.Owned().(*ComplexType); ok {
					visit(ct.Children)
				}
				continue
			}
			if i, cycle := onPath[name]; cycle {
				for _, n := range path[i:] {
					recursive[n] = struct{}{}
				}
				continue
			}
			if _, ok := done[name]; ok {
				continue
			}
			ct, ok := s.Types[name].(*ComplexType)
			if !ok {
				continue
			}
			onPath[name] = len(path)
			path = append(path, name)
			visit(ct.Children)
			path = path[:len(path)-1]
			delete(onPath, name)
			done[name] = struct{}{}
		}
	}
	visit(s.Structure)

	names := make([]string, 0, len(recursive))
	for name := range recursive {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckFinite returns a *RecursionError when Structure refers to itself
// through named types.
func (s *Schema) CheckFinite() error {
	if names := s.RecursiveTypes(); len(names) > 0 {
		return &RecursionError{Types: names}
	}
	return nil
}
