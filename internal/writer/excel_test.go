package writer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExcelWriter_Write(t *testing.T) {
	spec := testSpec(t)
	records := testRecords(t, spec,
		"00000008CLI001 120251231",
		"00000009CLI002 0        ",
	)

	var buf bytes.Buffer
	w := &ExcelWriter{IncludeSummary: true}
	if err := w.Write(&buf, spec.Layout(), records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Cliente_Data")
	if err != nil {
		t.Fatalf("failed to read data sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("data rows: got %d, want 3", len(rows))
	}

	wantHeader := []string{"id", "code", "flag", "when"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("header[%d]: got %q, want %q", i, rows[0][i], want)
		}
	}

	if rows[1][1] != "CLI001" {
		t.Errorf("row 1 code: got %q, want %q", rows[1][1], "CLI001")
	}
	if rows[1][3] != "2025-12-31" {
		t.Errorf("row 1 when: got %q, want %q", rows[1][3], "2025-12-31")
	}

	// Summary sheet carries the batch statistics.
	if got, _ := f.GetCellValue("Summary", "A1"); got != "Total Records" {
		t.Errorf("summary A1: got %q, want %q", got, "Total Records")
	}
	if got, _ := f.GetCellValue("Summary", "B1"); got != "2" {
		t.Errorf("summary B1: got %q, want %q", got, "2")
	}
	if got, _ := f.GetCellValue("Summary", "B3"); got != "24 characters" {
		t.Errorf("summary B3: got %q, want %q", got, "24 characters")
	}
	if got, _ := f.GetCellValue("Summary", "A6"); got != "Field Name" {
		t.Errorf("summary A6: got %q, want %q", got, "Field Name")
	}
}

func TestExcelWriter_NoSummary(t *testing.T) {
	spec := testSpec(t)
	records := testRecords(t, spec, "00000008CLI001 120251231")

	var buf bytes.Buffer
	w := &ExcelWriter{IncludeSummary: false}
	if err := w.Write(&buf, spec.Layout(), records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("Summary"); idx != -1 {
		t.Error("summary sheet present when IncludeSummary=false")
	}
	if idx, _ := f.GetSheetIndex("Cliente_Data"); idx == -1 {
		t.Error("data sheet missing")
	}
}
