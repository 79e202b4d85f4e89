// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xmldoc

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// declaredEncoding matches the encoding pseudo-attribute of an XML
// declaration. Group 2 is the encoding label.
var declaredEncoding = regexp.MustCompile(`^(\s*<\?xml\s[^>]*?\bencoding\s*=\s*["'])([A-Za-z][A-Za-z0-9._:-]*)["']`)

// toUTF8 transcodes a document whose declaration names a character set other
// than UTF-8, and rewrites the declaration to match the new bytes. Documents
// without a declared encoding are returned unchanged.
func toUTF8(data []byte) ([]byte, error) {
	m := declaredEncoding.FindSubmatchIndex(data)
	if m == nil {
		return data, nil
	}
	label := string(data[m[4]:m[5]])
	if strings.EqualFold(label, "utf-8") {
		return data, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s input: %w", label, err)
	}

	// The declaration is ASCII, so its offsets survive decoding.
	out := make([]byte, 0, len(decoded))
	out = append(out, decoded[:m[4]]...)
	out = append(out, "UTF-8"...)
	out = append(out, decoded[m[5]:]...)
	return out, nil
}
