// Package writer exports decoded record batches as CSV and Excel files.
// It works entirely off the field layout exposed by the spec, never
// re-deriving offsets or types on its own.
package writer

import (
	"strconv"
	"time"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

// FormatCell renders a decoded value for tabular output. Dates use
// YYYY-MM-DD; an absent date renders empty.
func FormatCell(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")
	default:
		return ""
	}
}

// UsageRow is the usage statistic for one field across a batch.
type UsageRow struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Length   int     `json:"length"`
	NonEmpty int     `json:"nonEmpty"`
	Percent  float64 `json:"percent"`
}

// FieldUsage computes per-field usage across records, in layout order.
// A field counts as used when its value is meaningful: non-blank text
// other than "0", a non-zero integer, a true boolean, or a present date.
func FieldUsage(layout []models.FieldInfo, records []*models.Record) []UsageRow {
	rows := make([]UsageRow, len(layout))
	for i, f := range layout {
		count := 0
		for _, r := range records {
			v, _ := r.Get(f.Name)
			if nonEmpty(v) {
				count++
			}
		}
		percent := 0.0
		if len(records) > 0 {
			percent = float64(count) / float64(len(records)) * 100
		}
		rows[i] = UsageRow{
			Name:     f.Name,
			Type:     string(f.Type),
			Length:   f.Length,
			NonEmpty: count,
			Percent:  percent,
		}
	}
	return rows
}

func nonEmpty(v any) bool {
	switch val := v.(type) {
	case string:
		return val != "" && val != "0"
	case int64:
		return val != 0
	case bool:
		return val
	case time.Time:
		return !val.IsZero()
	default:
		return false
	}
}
