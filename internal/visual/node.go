// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package visual

import (
	"iter"
	"strings"

	"github.com/dacolabs/xsdvis/internal/xsd"
)

// PaletteSize is the number of depth bands a presentation cycles through.
const PaletteSize = 9

// Kind distinguishes leaves from branches.
type Kind int

const (
	KindLeaf Kind = iota
	KindBranch
)

func (k Kind) String() string {
	if k == KindBranch {
		return "branch"
	}
	return "leaf"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is one rendered element with its subtree.
type Node struct {
	Name            string     `json:"name" yaml:"name"`
	TypeLabel       string     `json:"typeLabel" yaml:"typeLabel"`
	TypeDescription string     `json:"typeDescription" yaml:"typeDescription"`
	Annotation      string     `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	MinOccurs       int        `json:"minOccurs" yaml:"minOccurs"`
	MaxOccurs       xsd.Occurs `json:"maxOccurs" yaml:"maxOccurs"`
	Level           int        `json:"level" yaml:"level"`
	Kind            Kind       `json:"kind" yaml:"kind"`
	Restrictions    []string   `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	StructuralNotes []string   `json:"structuralNotes,omitempty" yaml:"structuralNotes,omitempty"`
	Children        []Node     `json:"children,omitempty" yaml:"children,omitempty"`
}

// Optional reports whether the element may be left out.
func (n Node) Optional() bool {
	return n.MinOccurs == 0
}

// IsLeaf reports whether n was rendered from a simple or unresolved type.
func (n Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// Band returns the palette band for n's depth.
func (n Node) Band() int {
	return n.Level % PaletteSize
}

// Walk yields every node in nodes depth-first, parents before children.
func Walk(nodes []Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(nodes, yield)
	}
}

func walk(nodes []Node, yield func(*Node) bool) bool {
	for i := range nodes {
		if !yield(&nodes[i]) {
			return false
		}
		if !walk(nodes[i].Children, yield) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the forest.
func Count(nodes []Node) int {
	n := 0
	for range Walk(nodes) {
		n++
	}
	return n
}

// Depth returns the number of levels in the forest.
func Depth(nodes []Node) int {
	depth := 0
	for n := range Walk(nodes) {
		depth = max(depth, n.Level+1)
	}
	return depth
}

// Emphasis marks the emphasised parts of a restriction line. A backslash
// before a '*' or another backslash makes it literal.
const Emphasis = "**"

var markupEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`)

// EscapeMarkup quotes the characters of s that Emphasize would treat as
// markup.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// Emphasize rewrites s, passing plain runs to plain and marked runs to strong.
// Escaped characters are passed through literally. An unterminated marker
// leaves the rest of the text plain.
func Emphasize(s string, plain, strong func(string) string) string {
	var sb, run strings.Builder
	open := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '*'):
			i++
			run.WriteByte(s[i])
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			i++
			if open {
				sb.WriteString(strong(run.String()))
			} else {
				sb.WriteString(plain(run.String()))
			}
			run.Reset()
			open = !open
		default:
			run.WriteByte(c)
		}
	}
	if open {
		sb.WriteString(plain(Emphasis + run.String()))
	} else {
		sb.WriteString(plain(run.String()))
	}
	return sb.String()
}
