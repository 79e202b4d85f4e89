// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xsd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// ErrNotSchema is matched by every ShapeError.
var ErrNotSchema = errors.New("supplied XML document is not a valid XML Schema Description document")

// ErrRecursive is matched by every RecursionError.
var ErrRecursive = errors.New("schema structure is recursive")

// ShapeError reports a document whose root is not an XML Schema root.
type ShapeError struct {
	// Name is the root element that was found instead.
	Name xml.Name
}

func (e *ShapeError) Error() string {
	if e.Name.Space == "" {
		return fmt.Sprintf("%v: root element is <%s>", ErrNotSchema, e.Name.Local)
	}
	return fmt.Sprintf("%v: root element is <%s> in namespace %q", ErrNotSchema, e.Name.Local, e.Name.Space)
}

func (e *ShapeError) Unwrap() error {
	return ErrNotSchema
}

// RecursionError reports named types that refer back to themselves.
type RecursionError struct {
	Types []string
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrRecursive, strings.Join(e.Types, ", "))
}

func (e *RecursionError) Unwrap() error {
	return ErrRecursive
}
