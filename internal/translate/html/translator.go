// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package html renders schemas as a standalone HTML page with collapsible
// element blocks.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/visual"
)

//go:embed page.html.tmpl
var tmplFS embed.FS

const layoutPrefix = "visualizer.layout."

var funcMap = template.FuncMap{
	"text":         func(string) string { return "" },
	"lines":        lines,
	"restrictions": restrictions,
	"notes":        notes,
}

var tmpl = template.Must(template.New("page.html.tmpl").Funcs(funcMap).ParseFS(tmplFS, "page.html.tmpl"))

// Translator renders documents as HTML.
type Translator struct{}

// Name returns the format identifier.
func (t *Translator) Name() string {
	return "html"
}

// FileExtension returns the file extension for HTML files.
func (t *Translator) FileExtension() string {
	return ".html"
}

type page struct {
	Lang  string
	Name  string
	Nodes []visual.Node
}

// Translate renders doc as a complete HTML page.
func (t *Translator) Translate(doc *translate.Document) ([]byte, error) {
	out, err := tmpl.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to clone template: %w", err)
	}
	out.Funcs(template.FuncMap{"text": layout(doc.Strings)})

	var buf bytes.Buffer
	data := page{Lang: doc.Strings.Language(), Name: doc.Name, Nodes: doc.Nodes}
	if err := out.ExecuteTemplate(&buf, "page.html.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func layout(s *lang.Service) func(string) string {
	return func(key string) string {
		return s.Get(layoutPrefix + key)
	}
}

// lines escapes s and turns newlines into line breaks.
func lines(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br />"))
}

func restrictions(items []string) template.HTML {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = visual.Emphasize(item, template.HTMLEscapeString, bold)
	}
	return template.HTML(strings.Join(out, "<br />"))
}

func notes(items []string) template.HTML {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = template.HTMLEscapeString(item)
	}
	return template.HTML(strings.Join(out, "<br />"))
}

func bold(s string) string {
	return "<b>" + template.HTMLEscapeString(s) + "</b>"
}
