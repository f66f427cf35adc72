// Package normalize cleans raw request input before it reaches handlers.
package normalize

import (
	"strconv"
	"strings"
)

// Key reduces s to a safe lowercase token: only a-z, 0-9, '_' and '-'
// survive. "View" → "view", "ed<i>t" → "edit".
func Key(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// AbsInt coerces s to a non-negative integer. Leading digits are kept
// ("12abc" → 12), anything unparseable is 0, and negatives are made
// positive. Values that overflow int64 are 0.
func AbsInt(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "+-")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Name trims surrounding whitespace and collapses inner runs of spaces.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LoginID trims and lowercases a login identifier.
func LoginID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Amount parses a money field. Blank input reports ok=false so callers can
// tell "not given" from zero. Thousands separators are accepted.
func Amount(s string) (v float64, ok bool, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
