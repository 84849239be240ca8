package models

import "time"

// Record is one decoded fixed-width line: an ordered mapping from field
// name to typed value. Values are aligned with the spec's field order and
// hold string (text), int64 (integer), bool (boolean) or time.Time (date;
// the zero time marks an absent or unparsable date).
type Record struct {
	spec   *Spec
	values []any
	index  map[string]int
}

// NewRecord builds a Record from decoded values in spec field order.
// The caller must supply exactly one value per field.
func NewRecord(spec *Spec, values []any) *Record {
	index := make(map[string]int, len(spec.fields))
	for i, f := range spec.fields {
		index[f.Name] = i
	}
	return &Record{spec: spec, values: values, index: index}
}

// Spec returns the specification this record was decoded with.
func (r *Record) Spec() *Spec {
	return r.spec
}

// Values returns the decoded values in spec field order.
func (r *Record) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Get returns the value for a field name.
func (r *Record) Get(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Text returns a text field's value, or "" if the field is missing or not
// a text field.
func (r *Record) Text(name string) string {
	if v, ok := r.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Int returns an integer field's value, or 0.
func (r *Record) Int(name string) int64 {
	if v, ok := r.Get(name); ok {
		if n, ok := v.(int64); ok {
			return n
		}
	}
	return 0
}

// Bool returns a boolean field's value, or false.
func (r *Record) Bool(name string) bool {
	if v, ok := r.Get(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Date returns a date field's value. The zero time means absent.
func (r *Record) Date(name string) time.Time {
	if v, ok := r.Get(name); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
