// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"strings"
	"unicode"

	"github.com/dacolabs/xsdvis/internal/translate"
)

const timestampType = "google.protobuf.Timestamp"

// scalar maps a built-in XSD type name to a proto3 type. Names that are not
// built-in types map to string.
func scalar(name string) string {
	switch name {
	case "boolean":
		return "bool"
	case "int", "short", "byte":
		return "int32"
	case "integer", "long", "nonPositiveInteger", "negativeInteger":
		return "int64"
	case "unsignedInt", "unsignedShort", "unsignedByte":
		return "uint32"
	case "unsignedLong", "nonNegativeInteger", "positiveInteger":
		return "uint64"
	case "float":
		return "float"
	case "decimal", "double":
		return "double"
	case "base64Binary", "hexBinary":
		return "bytes"
	case "dateTime":
		return timestampType
	default:
		return "string"
	}
}

func isASCIIAlnum(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// messageName returns an ASCII PascalCase name for s.
func messageName(s, fallback string) string {
	var sb strings.Builder
	for _, r := range translate.ToPascalCase(s) {
		if isASCIIAlnum(r) {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		return fallback + name
	}
	return name
}

// upperSnake converts s to UPPER_SNAKE_CASE, splitting words at case changes
// and at every character that is not an ASCII letter or digit.
func upperSnake(s string) string {
	var sb strings.Builder
	prev := rune(0)
	for _, r := range s {
		switch {
		case !isASCIIAlnum(r):
			r = '_'
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			sb.WriteRune('_')
		}
		if r == '_' && (prev == '_' || sb.Len() == 0) {
			prev = r
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
		prev = r
	}
	return strings.TrimSuffix(sb.String(), "_")
}

// fieldName converts s to lower_snake_case, prefixing "field_" when the
// result would not start with a letter.
func fieldName(s string) string {
	name := strings.ToLower(upperSnake(s))
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		return "field_" + name
	}
	return name
}

// packageName converts a document name to a proto package name.
func packageName(s string) string {
	name := strings.ToLower(upperSnake(s))
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		return "schema" + name
	}
	return name
}
