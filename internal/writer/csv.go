package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

// CSVWriter writes decoded records to CSV format, one column per field in
// layout order.
type CSVWriter struct{}

// WriteToFile writes records to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, layout []models.FieldInfo, records []*models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, layout, records)
}

// Write writes records in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, layout []models.FieldInfo, records []*models.Record) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := make([]string, len(layout))
	for i, f := range layout {
		header[i] = f.Name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(layout))
	for _, r := range records {
		for i, f := range layout {
			v, _ := r.Get(f.Name)
			row[i] = FormatCell(v)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
