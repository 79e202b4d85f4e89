// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package text renders schemas as a terminal tree.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/visual"
)

// Palette holds one foreground color per depth band.
var Palette = [visual.PaletteSize]lipgloss.Color{
	"#d7263d", "#f46036", "#e2a400", "#6a994e", "#2a9d8f",
	"#1b98e0", "#3f51b5", "#8e44ad", "#c2185b",
}

// Translator renders documents as a tree of styled lines. A nil Renderer
// produces plain text without escape sequences.
type Translator struct {
	Renderer *lipgloss.Renderer
}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "text"
}

// FileExtension returns the file extension for text files.
func (t *Translator) FileExtension() string {
	return ".txt"
}

// Translate renders doc as a tree rooted at the document name.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	r := t.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(io.Discard)
	}
	st := newStyles(r)

	root := tree.Root(st.title.Render(doc.Name)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(st.branch)
	for _, n := range doc.Nodes {
		root.Child(st.node(n, doc.Strings))
	}
	return []byte(root.String() + "\n"), nil
}

type styles struct {
	r      *lipgloss.Renderer
	title  lipgloss.Style
	branch lipgloss.Style
	kind   lipgloss.Style
	muted  lipgloss.Style
	strong lipgloss.Style
	label  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		r:      r,
		title:  r.NewStyle().Bold(true).Underline(true),
		branch: r.NewStyle().Foreground(lipgloss.Color("8")),
		kind:   r.NewStyle().Foreground(lipgloss.Color("12")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		strong: r.NewStyle().Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

func (st styles) node(n visual.Node, s *lang.Service) *tree.Tree {
	name := st.r.NewStyle().Bold(true).Foreground(Palette[n.Band()]).Render(n.Name)
	head := fmt.Sprintf("%s %s %s", name, st.kind.Render(n.TypeLabel), st.muted.Render(fmt.Sprintf("[%d..%s]", n.MinOccurs, n.MaxOccurs)))
	if n.Optional() {
		head += " " + st.muted.Render("("+s.Get("visualizer.layout.not_required")+")")
	}

	sub := tree.Root(head).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(st.branch)
	sub.Child(st.muted.Render(n.TypeDescription))
	if n.Annotation != "" {
		sub.Child(st.label.Render(s.Get("visualizer.layout.description")+":") + " " + strings.Join(strings.Fields(n.Annotation), " "))
	}
	for _, line := range n.Restrictions {
		sub.Child(visual.Emphasize(line, plain, st.strong.Render))
	}
	for _, line := range n.StructuralNotes {
		sub.Child(st.muted.Render(line))
	}
	for _, c := range n.Children {
		sub.Child(st.node(c, s))
	}
	return sub
}

func plain(s string) string {
	return s
}
