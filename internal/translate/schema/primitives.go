// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// primitive maps a built-in XSD type name to a JSON Schema. Unknown names
// accept any value.
func primitive(name string) *jsonschema.Schema {
	switch name {
	case "string", "normalizedString", "token", "language", "Name", "NCName",
		"ID", "IDREF", "ENTITY", "NMTOKEN", "QName", "NOTATION", "hexBinary",
		"gYear", "gYearMonth", "gMonth", "gMonthDay", "gDay":
		return &jsonschema.Schema{Type: "string"}
	case "IDREFS", "ENTITIES", "NMTOKENS":
		return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string"}}
	case "anyURI":
		return &jsonschema.Schema{Type: "string", Format: "uri"}
	case "date":
		return &jsonschema.Schema{Type: "string", Format: "date"}
	case "dateTime":
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case "time":
		return &jsonschema.Schema{Type: "string", Format: "time"}
	case "duration":
		return &jsonschema.Schema{Type: "string", Format: "duration"}
	case "base64Binary":
		return &jsonschema.Schema{Type: "string", ContentEncoding: "base64"}
	case "boolean":
		return &jsonschema.Schema{Type: "boolean"}
	case "integer", "int", "long", "short", "byte", "negativeInteger", "nonPositiveInteger":
		return &jsonschema.Schema{Type: "integer"}
	case "nonNegativeInteger", "unsignedLong", "unsignedInt", "unsignedShort", "unsignedByte":
		return &jsonschema.Schema{Type: "integer", Minimum: jsonschema.Ptr(0.0)}
	case "positiveInteger":
		return &jsonschema.Schema{Type: "integer", Minimum: jsonschema.Ptr(1.0)}
	case "decimal", "float", "double":
		return &jsonschema.Schema{Type: "number"}
	default:
		return &jsonschema.Schema{}
	}
}

// builtin reports whether name is a built-in XSD type.
func builtin(name string) bool {
	if name == "anyType" || name == "anySimpleType" {
		return true
	}
	return primitive(name).Type != "" || primitive(name).ContentEncoding != ""
}
