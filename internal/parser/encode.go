package parser

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

// EncodeRecord renders a record back into a fixed-width line of exactly
// the spec's total length. Re-decoding the result reproduces text and
// integer values exactly; booleans and dates keep their semantic value
// ("1"/"0" and YYYYMMDD) though not the original formatting.
func EncodeRecord(r *models.Record) string {
	spec := r.Spec()
	var b strings.Builder
	b.Grow(spec.TotalLength())

	for _, f := range spec.Fields() {
		v, _ := r.Get(f.Name)
		b.WriteString(encodeValue(v, f))
	}
	return b.String()
}

func encodeValue(v any, f models.Field) string {
	var s string
	switch f.Type {
	case models.FieldInteger:
		n, _ := v.(int64)
		s = fmt.Sprintf("%0*d", f.Length, n)
	case models.FieldBoolean:
		b, _ := v.(bool)
		if b {
			s = "1"
		} else {
			s = "0"
		}
		s = pad(s, f.Length)
	case models.FieldDate:
		t, _ := v.(time.Time)
		if t.IsZero() {
			s = strings.Repeat(" ", f.Length)
		} else {
			s = pad(t.Format("20060102"), f.Length)
		}
	default:
		str, _ := v.(string)
		s = pad(str, f.Length)
	}

	if chars := []rune(s); len(chars) > f.Length {
		s = string(chars[:f.Length])
	}
	return s
}

func pad(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
