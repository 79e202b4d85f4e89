// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package xmldoc turns raw XML text into a navigable element tree.
//
// It wraps aqwari.net/xml/xmltree and reports malformed input as a single
// DocumentError that lists every issue found before any tree is returned.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"unicode/utf8"

	"aqwari.net/xml/xmltree"
)

// Load parses data into an element tree rooted at the document element.
// Input declared in another character set is transcoded to UTF-8 first.
// Malformed input yields a *DocumentError and no tree.
func Load(data []byte) (*xmltree.Element, error) {
	data, err := toUTF8(data)
	if err != nil {
		return nil, &DocumentError{Issues: []Issue{{
			Severity: SeverityFatal,
			Code:     CodeInvalidEncoding,
			Message:  err.Error(),
			Line:     1,
			Column:   1,
		}}}
	}
	if issues := check(data); len(issues) > 0 {
		return nil, &DocumentError{Issues: issues}
	}

	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, &DocumentError{Issues: []Issue{issueFromError(err, 0, 0)}}
	}
	return root, nil
}

// check scans the whole document and collects encoding and well-formedness
// issues. The tokenizer stops at the first syntax error, so at most one
// syntax issue is reported next to any encoding issue.
func check(data []byte) []Issue {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Issue{{
			Severity: SeverityFatal,
			Code:     CodeEmptyDocument,
			Message:  "document is empty",
			Line:     1,
			Column:   1,
		}}
	}

	var issues []Issue
	if !utf8.Valid(data) {
		line, col := invalidUTF8Position(data)
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     CodeInvalidEncoding,
			Message:  "input is not proper UTF-8",
			Line:     line,
			Column:   col,
		})
	}

	d := xml.NewDecoder(bytes.NewReader(data))
	sawRoot := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, col := d.InputPos()
			issues = append(issues, issueFromError(err, line, col))
			return issues
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawRoot = true
		}
	}
	if !sawRoot {
		line, col := d.InputPos()
		issues = append(issues, Issue{
			Severity: SeverityFatal,
			Code:     CodeNoRootElement,
			Message:  "document has no root element",
			Line:     line,
			Column:   col,
		})
	}
	return issues
}

func issueFromError(err error, line, col int) Issue {
	issue := Issue{
		Severity: SeverityFatal,
		Code:     CodeSyntax,
		Message:  err.Error(),
		Line:     line,
		Column:   col,
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		issue.Message = syntaxErr.Msg
		if issue.Line == 0 {
			issue.Line = syntaxErr.Line
		}
	}
	return issue
}

func invalidUTF8Position(data []byte) (line, col int) {
	line, col = 1, 1
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return line, col
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		data = data[size:]
	}
	return line, col
}
