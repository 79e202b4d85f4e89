// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strconv"
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case, kebab-case, dotted or camelCase string
// to PascalCase. It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML,
// SQL, HTML).
func ToPascalCase(s string) string {
	// Common acronyms that should be fully uppercased.
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"uri":  "URI",
		"uuid": "UUID",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else {
			r := []rune(part)
			sb.WriteString(strings.ToUpper(string(r[0])) + string(r[1:]))
		}
	}

	return sb.String()
}

// Identifier turns s into a PascalCase identifier, prefixing fallback when s
// does not start with a letter.
func Identifier(s, fallback string) string {
	name := ToPascalCase(s)
	if name == "" {
		return fallback
	}
	if r := []rune(name)[0]; !unicode.IsLetter(r) {
		return fallback + name
	}
	return name
}

// Namer hands out unique names within one scope.
type Namer map[string]bool

// Unique returns name, or name with the smallest numeric suffix from 2 that
// is still free, and marks the result as taken.
func (n Namer) Unique(name string) string {
	candidate := name
	for i := 2; n[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	n[candidate] = true
	return candidate
}
