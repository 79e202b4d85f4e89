// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xmldoc

import (
	"bytes"
	"encoding/xml"
	"strings"

	"aqwari.net/xml/xmltree"
)

// TextContent returns the concatenated character data of el and all of its
// descendants, with entities and CDATA sections decoded.
func TextContent(el *xmltree.Element) string {
	if len(el.Content) == 0 {
		var sb strings.Builder
		for i := range el.Children {
			sb.WriteString(TextContent(&el.Children[i]))
		}
		return sb.String()
	}

	d := xml.NewDecoder(bytes.NewReader(el.Content))
	d.Strict = false
	d.Entity = xml.HTMLEntity

	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			sb.Write(cd)
		}
	}
	return sb.String()
}

// Elements returns the element children of el in document order.
func Elements(el *xmltree.Element) []*xmltree.Element {
	out := make([]*xmltree.Element, 0, len(el.Children))
	for i := range el.Children {
		out = append(out, &el.Children[i])
	}
	return out
}

// Attrs returns the attributes of el, excluding namespace declarations.
func Attrs(el *xmltree.Element) []xml.Attr {
	out := make([]xml.Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		if IsNamespaceDecl(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// IsNamespaceDecl reports whether a is an xmlns or xmlns:prefix declaration.
func IsNamespaceDecl(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// PrefixFor returns the prefix el declares for namespace uri. The empty
// string is returned both for a default namespace declaration and when no
// declaration exists; ok distinguishes the two.
func PrefixFor(el *xmltree.Element, uri string) (prefix string, ok bool) {
	for _, a := range el.Attr {
		if a.Value != uri {
			continue
		}
		switch {
		case a.Name.Space == "xmlns":
			return a.Name.Local, true
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			return "", true
		}
	}
	return "", false
}
