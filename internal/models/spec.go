package models

import "fmt"

// FieldType identifies how a field's raw bytes are decoded.
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldInteger FieldType = "integer"
	FieldBoolean FieldType = "boolean"
	FieldDate    FieldType = "date"
)

// Field describes one fixed-width field: its name, byte length, decoded
// type, and start offset within the record line.
type Field struct {
	Name   string    `json:"name"`
	Length int       `json:"length"`
	Type   FieldType `json:"type"`
	Start  int       `json:"start"`
}

// End returns the inclusive end offset of the field.
func (f Field) End() int {
	return f.Start + f.Length - 1
}

// Spec is an ordered, immutable catalogue of fields. The fields must tile
// the record exactly: the first field starts at offset 0 and every field
// starts where the previous one ends, with no gaps or overlaps.
type Spec struct {
	fields []Field
	total  int
}

// NewSpec validates the field catalogue and returns a Spec. It fails if the
// fields do not tile the record contiguously, if a name repeats, if a
// length is not positive, or if a field type is unknown.
func NewSpec(fields []Field) (*Spec, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("spec must declare at least one field")
	}

	seen := make(map[string]bool, len(fields))
	offset := 0
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: empty name", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("field %q: duplicate name", f.Name)
		}
		seen[f.Name] = true

		if f.Length <= 0 {
			return nil, fmt.Errorf("field %q: length must be positive, got %d", f.Name, f.Length)
		}
		switch f.Type {
		case FieldText, FieldInteger, FieldBoolean, FieldDate:
		default:
			return nil, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
		}
		if f.Start != offset {
			return nil, fmt.Errorf("field %q: start offset %d does not tile, expected %d", f.Name, f.Start, offset)
		}
		offset += f.Length
	}

	s := &Spec{
		fields: make([]Field, len(fields)),
		total:  offset,
	}
	copy(s.fields, fields)
	return s, nil
}

// Fields returns a copy of the ordered field catalogue.
func (s *Spec) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// TotalLength returns the fixed record length in characters.
func (s *Spec) TotalLength() int {
	return s.total
}

// FieldInfo is the read-only layout view of one field, exposed to export
// and CLI surfaces so they never re-derive offsets on their own.
type FieldInfo struct {
	Name   string    `json:"name"`
	Type   FieldType `json:"type"`
	Length int       `json:"length"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
}

// Layout returns the field layout in catalogue order.
func (s *Spec) Layout() []FieldInfo {
	layout := make([]FieldInfo, len(s.fields))
	for i, f := range s.fields {
		layout[i] = FieldInfo{
			Name:   f.Name,
			Type:   f.Type,
			Length: f.Length,
			Start:  f.Start,
			End:    f.End(),
		}
	}
	return layout
}
