package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
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

func testLine(id int) string {
	return strings.ReplaceAll("0000000#CODE0# 120251231", "#", string(rune('0'+id)))
}

func TestRead_SkipsBlankLines(t *testing.T) {
	r := New(testSpec(t))

	// 5 lines where line 3 is blank: the batch must hold 4 records and
	// none of them comes from line 3.
	input := strings.Join([]string{
		testLine(1),
		testLine(2),
		"",
		testLine(4),
		testLine(5),
	}, "\n")

	batch, err := r.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Records) != 4 {
		t.Fatalf("records: got %d, want 4", len(batch.Records))
	}
	if len(batch.Errors) != 0 {
		t.Errorf("errors: got %d, want 0", len(batch.Errors))
	}

	wantIDs := []int64{1, 2, 4, 5}
	for i, want := range wantIDs {
		if got := batch.Records[i].Int("id"); got != want {
			t.Errorf("record[%d].id: got %d, want %d", i, got, want)
		}
	}
}

func TestRead_SkipsWhitespaceOnlyLines(t *testing.T) {
	r := New(testSpec(t))

	input := testLine(1) + "\n" + strings.Repeat(" ", 24) + "\n" + testLine(2) + "\n"
	batch, err := r.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Records) != 2 {
		t.Errorf("records: got %d, want 2", len(batch.Records))
	}
}

func TestRead_StripsCRLF(t *testing.T) {
	r := New(testSpec(t))

	input := testLine(1) + "\r\n" + testLine(2) + "\r\n"
	batch, err := r.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Records) != 2 {
		t.Fatalf("records: got %d, want 2", len(batch.Records))
	}
	// The \r must not leak into the last field.
	if got := batch.Records[0].Date("when"); got.IsZero() {
		t.Error("when: got absent, want a decoded date (CR leaked into the slice?)")
	}
}

func TestValidateLength(t *testing.T) {
	r := New(testSpec(t))

	full := testLine(1)
	if !r.ValidateLength(full) {
		t.Error("full-length line: got false, want true")
	}
	if !r.ValidateLength(full + "\r\n") {
		t.Error("terminators must not count toward record length")
	}

	// Ten characters short: validation fails, decoding still succeeds
	// and yields a complete record.
	short := full[:len(full)-10]
	if r.ValidateLength(short) {
		t.Error("short line: got true, want false")
	}

	batch, err := r.Read(strings.NewReader(short))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("records: got %d, want 1", len(batch.Records))
	}
	if len(batch.Records[0].Values()) != 4 {
		t.Errorf("values: got %d, want 4", len(batch.Records[0].Values()))
	}
}

func TestReadFile(t *testing.T) {
	r := New(testSpec(t))

	path := filepath.Join(t.TempDir(), "records.dat")
	content := testLine(1) + "\n" + testLine(2) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	batch, err := r.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Records) != 2 {
		t.Errorf("records: got %d, want 2", len(batch.Records))
	}

	if _, err := r.ReadFile(filepath.Join(t.TempDir(), "missing.dat")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAuditFile(t *testing.T) {
	r := New(testSpec(t))

	path := filepath.Join(t.TempDir(), "records.dat")
	content := strings.Join([]string{
		testLine(1),
		testLine(2)[:14], // short
		"",
		testLine(3) + "XX", // long
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	results, err := r.AuditFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Blank line is skipped, so three results.
	if len(results) != 3 {
		t.Fatalf("results: got %d, want 3", len(results))
	}

	if !results[0].OK || results[0].Line != 1 {
		t.Errorf("results[0]: got line=%d ok=%v, want line=1 ok=true", results[0].Line, results[0].OK)
	}
	if results[1].OK || results[1].Length != 14 {
		t.Errorf("results[1]: got length=%d ok=%v, want length=14 ok=false", results[1].Length, results[1].OK)
	}
	if results[2].OK || results[2].Line != 4 {
		t.Errorf("results[2]: got line=%d ok=%v, want line=4 ok=false", results[2].Line, results[2].OK)
	}
}

func TestRead_Latin1Encoding(t *testing.T) {
	r := &Reader{Spec: testSpec(t), Encoding: "latin-1"}

	// "CITT\xC0" is "CITTÀ" in Latin-1. Place it in the text field.
	line := []byte("00000001CITT\xC0  120251231")
	batch, err := r.Read(bytes.NewReader(line))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Records) != 1 {
		t.Fatalf("records: got %d, want 1", len(batch.Records))
	}
	if got := batch.Records[0].Text("code"); got != "CITTÀ" {
		t.Errorf("code: got %q, want %q", got, "CITTÀ")
	}
}

func TestNewCharsetReader_Unsupported(t *testing.T) {
	if _, err := NewCharsetReader(strings.NewReader(""), "ebcdic"); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}
