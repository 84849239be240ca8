// Package parser decodes fixed-width Cliente lines into typed records.
//
// Decoding is deliberately permissive: this data comes from a legacy
// system, so unparsable integers become 0, unparsable booleans become
// false, and unparsable dates become the absent marker. None of these are
// reported as errors.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

// truthTokens are the upper-cased values that decode to true.
var truthTokens = map[string]bool{
	"TRUE": true,
	"1":    true,
	"Y":    true,
	"S":    true,
	"SI":   true,
}

// DecodeValue converts a raw fixed-width substring into a typed value
// according to the field type. It is a pure, total function: every input
// produces a value, never an error.
func DecodeValue(raw string, t models.FieldType) any {
	clean := strings.TrimSpace(raw)

	switch t {
	case models.FieldInteger:
		return decodeInteger(clean)
	case models.FieldBoolean:
		return decodeBoolean(clean)
	case models.FieldDate:
		return decodeDate(clean)
	default:
		return clean
	}
}

func decodeInteger(clean string) int64 {
	if clean == "" || !isDigits(clean) {
		return 0
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func decodeBoolean(clean string) bool {
	return clean == "1" || truthTokens[strings.ToUpper(clean)]
}

// decodeDate expects exactly 8 digits in YYYYMMDD order. Anything else,
// including a valid-looking string with an impossible month or day,
// decodes to the zero time (absent).
func decodeDate(clean string) time.Time {
	if len(clean) != 8 || !isDigits(clean) {
		return time.Time{}
	}
	t, err := time.Parse("20060102", clean)
	if err != nil {
		return time.Time{}
	}
	return t
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
