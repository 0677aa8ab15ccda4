package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber converts a cell into a float64. Every rune other than an ASCII
// digit, '.' or '-' is dropped before parsing, so "₹ 50,000" reads as 50000.
// Empty input and anything that still fails to parse yield 0.
func ParseNumber(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Digits keeps only the ASCII digits of s. Used for phone number matching
// where the sheet mixes "+91 98450-12345" and "9845012345".
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NormalizeLabel lowercases s, trims it and collapses internal whitespace
// runs to a single space.
func NormalizeLabel(s string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), unicode.IsSpace), " ")
}
