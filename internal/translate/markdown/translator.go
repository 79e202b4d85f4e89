// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders schemas as a nested markdown outline.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/visual"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"text":    func(string) string { return "" },
	"indent":  indent,
	"occurs":  occurs,
	"oneline": oneline,
	"md":      escape,
	"code":    code,
	"emph":    emphasize,
}

var escaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
	`[`, `\[`, `]`, `\]`, `<`, `\<`, `>`, `\>`, `#`, `\#`, `|`, `\|`,
)

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator renders documents as markdown.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

type outline struct {
	Name  string
	Nodes []visual.Node
}

// Translate renders doc as a markdown outline. Restriction emphasis is kept
// as markdown bold; all other schema text is escaped.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	out, err := tmpl.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to clone template: %w", err)
	}
	out.Funcs(template.FuncMap{
		"text": func(key string) string { return doc.Strings.Get("visualizer.layout." + key) },
	})

	var buf bytes.Buffer
	if err := out.ExecuteTemplate(&buf, "markdown.md.tmpl", outline{Name: doc.Name, Nodes: doc.Nodes}); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

// occurs formats the occurrence bounds of n, e.g. [0..unbounded].
func occurs(n visual.Node) string {
	return fmt.Sprintf("[%d..%s]", n.MinOccurs, n.MaxOccurs)
}

func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// escape quotes markdown syntax characters in s.
func escape(s string) string {
	return escaper.Replace(s)
}

// code wraps s in a code span long enough to hold any backticks inside it.
func code(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func emphasize(s string) string {
	return visual.Emphasize(s, escape, func(s string) string { return "**" + escape(s) + "**" })
}
