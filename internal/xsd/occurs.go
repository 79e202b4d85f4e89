// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xsd

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Occurs is a maximum occurrence bound. Unbounded stands for positive infinity.
type Occurs int

// Unbounded is the sentinel for maxOccurs="unbounded".
const Unbounded Occurs = math.MaxInt

const unboundedText = "unbounded"

// ParseOccurs parses a maxOccurs attribute value.
func ParseOccurs(s string) Occurs {
	if s == unboundedText {
		return Unbounded
	}
	return Occurs(parseCount(s))
}

// IsUnbounded reports whether o is the Unbounded sentinel.
func (o Occurs) IsUnbounded() bool {
	return o == Unbounded
}

func (o Occurs) String() string {
	if o.IsUnbounded() {
		return unboundedText
	}
	return strconv.Itoa(int(o))
}

// MarshalJSON writes a number, or the string "unbounded".
func (o Occurs) MarshalJSON() ([]byte, error) {
	if o.IsUnbounded() {
		return json.Marshal(unboundedText)
	}
	return json.Marshal(int(o))
}

// UnmarshalJSON accepts a number or the string "unbounded".
func (o *Occurs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = ParseOccurs(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*o = Occurs(n)
	return nil
}

// MarshalYAML writes an int, or the string "unbounded".
func (o Occurs) MarshalYAML() (any, error) {
	if o.IsUnbounded() {
		return unboundedText, nil
	}
	return int(o), nil
}

// parseCount reads the leading integer of s the way a lenient integer cast
// does: surrounding space is ignored, trailing garbage is dropped, and text
// without a leading number yields 0. Negative counts clamp to 0 and counts
// too large for an int saturate at math.MaxInt.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return math.MaxInt
	}
	if err != nil || n < 0 {
		return 0
	}
	return n
}
