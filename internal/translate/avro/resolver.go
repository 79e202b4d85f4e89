// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"strings"
	"unicode"
)

// primitive maps a built-in XSD type name to an Avro type. Names that are not
// built-in types map to string.
func primitive(name string) any {
	switch name {
	case "boolean":
		return "boolean"
	case "int", "short", "byte", "unsignedShort", "unsignedByte":
		return "int"
	case "integer", "long", "unsignedInt", "unsignedLong",
		"nonNegativeInteger", "positiveInteger", "nonPositiveInteger", "negativeInteger":
		return "long"
	case "float":
		return "float"
	case "decimal", "double":
		return "double"
	case "base64Binary", "hexBinary":
		return "bytes"
	case "date":
		return avroLogicalType{Type: "int", LogicalType: "date"}
	case "dateTime":
		return avroLogicalType{Type: "long", LogicalType: "timestamp-millis"}
	case "time":
		return avroLogicalType{Type: "int", LogicalType: "time-millis"}
	default:
		return "string"
	}
}

// validName reports whether s matches the Avro name grammar
// [A-Za-z_][A-Za-z0-9_]*.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r < unicode.MaxASCII && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// fieldName replaces every character Avro does not allow in a name with an
// underscore.
func fieldName(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r == '_', r < unicode.MaxASCII && unicode.IsLetter(r):
			sb.WriteRune(r)
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			if i == 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

// namespace turns a target namespace URI into a dotted Avro namespace.
func namespace(uri string) string {
	parts := strings.FieldsFunc(uri, func(r rune) bool {
		return r >= unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_')
	})
	if len(parts) == 0 {
		return defaultNamespace
	}
	for i, p := range parts {
		if unicode.IsDigit(rune(p[0])) {
			parts[i] = "_" + p
		}
	}
	return strings.Join(parts, ".")
}
