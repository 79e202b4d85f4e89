// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xmldoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is matched by every DocumentError.
var ErrMalformed = errors.New("malformed XML document")

// Severity classifies a document issue.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "XML WARNING"
	case SeverityFatal:
		return "XML FATAL ERROR"
	default:
		return "XML ERROR"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(strings.TrimPrefix(s.String(), "XML "))), nil
}

// Issue codes.
const (
	CodeSyntax          = 1
	CodeInvalidEncoding = 2
	CodeEmptyDocument   = 3
	CodeNoRootElement   = 4
)

// Issue is a single problem found while reading a document.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] #%d: %s @l:%d|c:%d", i.Severity, i.Code, i.Message, i.Line, i.Column)
}

// DocumentError aggregates all issues that prevented a document from loading.
type DocumentError struct {
	Issues []Issue
}

func (e *DocumentError) Error() string {
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, ErrMalformed.Error()+":")
	for _, issue := range e.Issues {
		lines = append(lines, issue.String())
	}
	return strings.Join(lines, "\n")
}

func (e *DocumentError) Unwrap() error {
	return ErrMalformed
}
