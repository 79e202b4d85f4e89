// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package server

import (
	"encoding/json"
	"net/http"

	"github.com/dacolabs/xsdvis/internal/xmldoc"
)

// Error types reported in APIError.Type.
const (
	TypeUnknownFormat       = "UNKNOWN_FORMAT"
	TypeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	TypeBadRequest          = "BAD_REQUEST"
	TypeTooLarge            = "TOO_LARGE"
	TypeMalformedXML        = "MALFORMED_XML"
	TypeNotSchema           = "NOT_A_SCHEMA"
	TypeRecursiveSchema     = "RECURSIVE_SCHEMA"
	TypeError               = "ERROR"
)

// APIError is the JSON body of every error response.
type APIError struct {
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Issues  []xmldoc.Issue `json:"issues,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, e APIError) {
	writeJSON(w, status, e)
}
