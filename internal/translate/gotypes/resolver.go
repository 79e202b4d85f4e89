// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"go/token"
	"strings"
	"unicode"
)

// primitive maps a built-in XSD type name to a Go type. Names that are not
// built-in types map to string.
func primitive(name string) string {
	switch name {
	case "boolean":
		return "bool"
	case "integer", "long", "nonPositiveInteger", "negativeInteger":
		return "int64"
	case "int":
		return "int32"
	case "short":
		return "int16"
	case "byte":
		return "int8"
	case "nonNegativeInteger", "positiveInteger", "unsignedLong":
		return "uint64"
	case "unsignedInt":
		return "uint32"
	case "unsignedShort":
		return "uint16"
	case "unsignedByte":
		return "uint8"
	case "decimal", "double":
		return "float64"
	case "float":
		return "float32"
	case "dateTime":
		return "time.Time"
	case "base64Binary":
		return "[]byte"
	case "IDREFS", "ENTITIES", "NMTOKENS":
		return "[]string"
	default:
		return "string"
	}
}

// packageName derives a lowercase package name from a document name.
func packageName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || (unicode.IsDigit(r) && sb.Len() > 0)) {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	switch {
	case name == "":
		return "schema"
	case token.IsKeyword(name):
		return name + "xsd"
	}
	return name
}
