package parser

import (
	"fmt"
	"strings"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

// DecodeLine slices one input line according to the spec and decodes every
// field into a typed record.
//
// Offsets count characters, not bytes, so accented text from a legacy
// charset does not shift later fields. Short lines are right-padded with
// spaces to the spec's total length before slicing, so a truncated line
// still yields a full record. Trailing characters beyond the total length
// are ignored: no field references those offsets.
func DecodeLine(spec *models.Spec, line string) (*models.Record, error) {
	if spec == nil {
		return nil, fmt.Errorf("nil spec")
	}

	total := spec.TotalLength()
	chars := []rune(line)
	if len(chars) < total {
		chars = append(chars, []rune(strings.Repeat(" ", total-len(chars)))...)
	}

	fields := spec.Fields()
	values := make([]any, len(fields))
	for i, f := range fields {
		raw := string(chars[f.Start : f.Start+f.Length])
		values[i] = DecodeValue(raw, f.Type)
	}

	return models.NewRecord(spec, values), nil
}
