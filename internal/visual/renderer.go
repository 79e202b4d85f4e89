// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package visual turns a parsed schema into a tree of presentation nodes.
//
// Named type references are followed through the schema's type table on
// every visit, so a type used by several elements is rendered under each of
// them. Recursive named types are not detected; a schema whose complex type
// contains itself renders without end. Callers taking untrusted input check
// xsd.Schema.CheckFinite first.
package visual

import (
	"iter"
	"strings"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

// Display string keys.
const (
	KeyBasicType         = "visualizer.types.basic_type"
	KeySimpleTypeOnOther = "visualizer.types.simple_type_on_other"
	KeySimpleTypeOnBasic = "visualizer.types.simple_type_on_basic"
	KeyComplexType       = "visualizer.types.complex_type"

	KeyAllowedValues    = "visualizer.restrictions.allowed_values"
	KeyPattern          = "visualizer.restrictions.pattern"
	KeyMinInclusive     = "visualizer.restrictions.min_value_inc"
	KeyMaxInclusive     = "visualizer.restrictions.max_value_inc"
	KeyMinExclusive     = "visualizer.restrictions.min_value_exc"
	KeyMaxExclusive     = "visualizer.restrictions.max_value_exc"
	KeyComplexAll       = "visualizer.restrictions.complex_all"
	KeyComplexChoice    = "visualizer.restrictions.complex_choice"
	KeyComplexSequence  = "visualizer.restrictions.complex_sequence"
	KeySequenceInfinite = "visualizer.restrictions.complex_sequence_to_infinite"
	KeySkipNotRequired  = "visualizer.restrictions.complex_skip_not_required"
)

// Renderer renders schemas with display strings from a lang.Service.
type Renderer struct {
	strings *lang.Service
}

// New returns a Renderer using s for every label and description.
func New(s *lang.Service) *Renderer {
	return &Renderer{strings: s}
}

// Render renders every top-level element of schema.
func (r *Renderer) Render(schema *xsd.Schema) []Node {
	nodes := make([]Node, 0, len(schema.Structure))
	for n := range r.Nodes(schema) {
		nodes = append(nodes, n)
	}
	return nodes
}

// Nodes renders top-level elements one at a time as the sequence is consumed.
func (r *Renderer) Nodes(schema *xsd.Schema) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, el := range schema.Structure {
			if !yield(r.element(el, schema.Types, 0)) {
				return
			}
		}
	}
}

func (r *Renderer) element(el *xsd.Element, types xsd.Types, level int) Node {
	node := Node{
		Name:      el.Name,
		MinOccurs: el.MinOccurs,
		MaxOccurs: el.MaxOccurs,
		Level:     level,
		Kind:      KindLeaf,
	}

	t, ok := el.Type.Resolve(types)
	if !ok {
		name, _ := el.Type.Name()
		node.TypeLabel = name
		node.TypeDescription = r.strings.Get(KeyBasicType, name)
		node.Annotation = el.Annotation
		return node
	}

	node.Annotation = el.Annotation
	if node.Annotation == "" {
		node.Annotation = t.Doc()
	}

	switch t := t.(type) {
	case *xsd.SimpleType:
		r.simple(&node, t)
	case *xsd.ComplexType:
		r.complex(&node, t, types, level)
	}
	return node
}

func (r *Renderer) simple(node *Node, t *xsd.SimpleType) {
	if t.BaseType != "" {
		node.TypeLabel = t.BaseType
		node.TypeDescription = r.strings.Get(KeySimpleTypeOnOther, t.BaseType)
	} else {
		node.TypeLabel = t.Name
		node.TypeDescription = r.strings.Get(KeySimpleTypeOnBasic)
	}

	var restrictions []string
	if len(t.Values) > 0 {
		values := make([]string, len(t.Values))
		for i, v := range t.Values {
			values[i] = EscapeMarkup(v)
		}
		restrictions = append(restrictions, r.strings.Get(KeyAllowedValues, strings.Join(values, Emphasis+", "+Emphasis)))
	}
	facets := []struct {
		key, value string
	}{
		{KeyPattern, t.Pattern},
		{KeyMinInclusive, t.MinInclusive},
		{KeyMaxInclusive, t.MaxInclusive},
		{KeyMinExclusive, t.MinExclusive},
		{KeyMaxExclusive, t.MaxExclusive},
	}
	for _, f := range facets {
		if f.value != "" {
			restrictions = append(restrictions, r.strings.Get(f.key, EscapeMarkup(f.value)))
		}
	}
	node.Restrictions = restrictions
}

func (r *Renderer) complex(node *Node, t *xsd.ComplexType, types xsd.Types, level int) {
	node.Kind = KindBranch
	node.TypeLabel = t.Name
	node.TypeDescription = r.strings.Get(KeyComplexType)

	var notes []string
	switch t.Kind {
	case xsd.GroupAll:
		notes = append(notes, r.strings.Get(KeyComplexAll))
	case xsd.GroupChoice:
		notes = append(notes, r.strings.Get(KeyComplexChoice))
	case xsd.GroupSequence:
		var upper any = int(t.MaxOccurs)
		if t.MaxOccurs.IsUnbounded() {
			upper = r.strings.Get(KeySequenceInfinite)
		}
		notes = append(notes, r.strings.Get(KeyComplexSequence, t.MinOccurs, upper))
	}
	node.StructuralNotes = append(notes, r.strings.Get(KeySkipNotRequired))

	if len(t.Children) > 0 {
		node.Children = make([]Node, 0, len(t.Children))
		for _, child := range t.Children {
			node.Children = append(node.Children, r.element(child, types, level+1))
		}
	}
}
