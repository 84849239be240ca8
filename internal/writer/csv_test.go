package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
	"github.com/insightdelivered/cliente-record-reader/internal/parser"
)

func testSpec(t *testing.T) *models.Spec {
	t.Helper()
	spec, err := models.NewSpec([]models.Field{
		{Name: "id", Length: 8, Type: models.FieldInteger, Start: 0},
		{Name: "code", Length: 6, Type: models.FieldText, Start: 8},
		{Name: "flag", Length: 2, Type: models.FieldBoolean, Start: 14},
		{Name: "when", Length: 8, Type: models.FieldDate, Start: 16},
	})
	if err != nil {
		t.Fatalf("failed to build test spec: %v", err)
	}
	return spec
}

func testRecords(t *testing.T, spec *models.Spec, lines ...string) []*models.Record {
	t.Helper()
	records := make([]*models.Record, len(lines))
	for i, line := range lines {
		r, err := parser.DecodeLine(spec, line)
		if err != nil {
			t.Fatalf("failed to decode test line: %v", err)
		}
		records[i] = r
	}
	return records
}

func TestCSVWriter_Write(t *testing.T) {
	spec := testSpec(t)
	records := testRecords(t, spec,
		"00000008CLI001 120251231",
		"00000009CLI002 0        ",
	)

	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, spec.Layout(), records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, want 3", len(lines))
	}

	if lines[0] != "id,code,flag,when" {
		t.Errorf("header: got %q, want %q", lines[0], "id,code,flag,when")
	}
	if lines[1] != "8,CLI001,true,2025-12-31" {
		t.Errorf("row 1: got %q, want %q", lines[1], "8,CLI001,true,2025-12-31")
	}
	// Absent date renders empty.
	if lines[2] != "9,CLI002,false," {
		t.Errorf("row 2: got %q, want %q", lines[2], "9,CLI002,false,")
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"text", "Milano", "Milano"},
		{"integer", int64(1200), "1200"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"date", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2025-12-31"},
		{"absent date", time.Time{}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCell(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFieldUsage(t *testing.T) {
	spec := testSpec(t)
	records := testRecords(t, spec,
		"00000008CLI001 120251231",
		"00000000        0        ", // everything empty or zero
	)

	usage := FieldUsage(spec.Layout(), records)
	if len(usage) != 4 {
		t.Fatalf("usage rows: got %d, want 4", len(usage))
	}

	byName := map[string]UsageRow{}
	for _, u := range usage {
		byName[u.Name] = u
	}

	if got := byName["id"].NonEmpty; got != 1 {
		t.Errorf("id non-empty: got %d, want 1", got)
	}
	if got := byName["code"].NonEmpty; got != 1 {
		t.Errorf("code non-empty: got %d, want 1", got)
	}
	if got := byName["flag"].NonEmpty; got != 1 {
		t.Errorf("flag non-empty: got %d, want 1", got)
	}
	if got := byName["when"].Percent; got != 50.0 {
		t.Errorf("when percent: got %.1f, want 50.0", got)
	}
}
