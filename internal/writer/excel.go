package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

const (
	dataSheet    = "Cliente_Data"
	summarySheet = "Summary"

	// Column widths are fitted to content, then capped so a 255-char
	// free-text field does not produce an unusable sheet.
	maxDataColWidth    = 50
	maxSummaryColWidth = 30
)

// ExcelWriter writes decoded records to an .xlsx workbook with a
// Cliente_Data sheet and, optionally, a Summary sheet carrying record
// counts and per-field usage statistics.
type ExcelWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the workbook to the given path.
func (w *ExcelWriter) WriteToFile(path string, layout []models.FieldInfo, records []*models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, layout, records)
}

// Write writes the workbook to the given writer.
func (w *ExcelWriter) Write(out io.Writer, layout []models.FieldInfo, records []*models.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("failed to set up data sheet: %w", err)
	}

	if err := w.writeDataSheet(f, layout, records); err != nil {
		return err
	}

	if w.IncludeSummary {
		if err := w.writeSummarySheet(f, layout, records); err != nil {
			return err
		}
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *ExcelWriter) writeDataSheet(f *excelize.File, layout []models.FieldInfo, records []*models.Record) error {
	// Track the widest cell per column while writing.
	widths := make([]int, len(layout))

	for i, field := range layout {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(dataSheet, cell, field.Name); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
		widths[i] = len(field.Name)
	}

	for rowIdx, r := range records {
		for colIdx, field := range layout {
			v, _ := r.Get(field.Name)
			formatted := FormatCell(v)
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(dataSheet, cell, formatted); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
			if len(formatted) > widths[colIdx] {
				widths[colIdx] = len(formatted)
			}
		}
	}

	// Bold white header on a blue fill, matching the house export style.
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(layout), 1)
	if err := f.SetCellStyle(dataSheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i := range layout {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(widths[i] + 2)
		if width > maxDataColWidth {
			width = maxDataColWidth
		}
		if err := f.SetColWidth(dataSheet, colName, colName, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}

func (w *ExcelWriter) writeSummarySheet(f *excelize.File, layout []models.FieldInfo, records []*models.Record) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	recordLength := 0
	for _, field := range layout {
		recordLength += field.Length
	}

	rows := [][]any{
		{"Total Records", len(records)},
		{"Total Fields", len(layout)},
		{"Record Length", fmt.Sprintf("%d characters", recordLength)},
		{},
		{"Field Usage Analysis"},
		{"Field Name", "Data Type", "Length", "Non-Empty Count", "Usage %"},
	}
	for _, u := range FieldUsage(layout, records) {
		rows = append(rows, []any{
			u.Name, u.Type, u.Length, u.NonEmpty, fmt.Sprintf("%.1f%%", u.Percent),
		})
	}

	widths := make([]int, 0)
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("failed to write summary cell %s: %w", cell, err)
			}
			for len(widths) <= colIdx {
				widths = append(widths, 0)
			}
			if l := len(fmt.Sprint(v)); l > widths[colIdx] {
				widths[colIdx] = l
			}
		}
	}

	for i, wd := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(wd + 2)
		if width > maxSummaryColWidth {
			width = maxSummaryColWidth
		}
		if err := f.SetColWidth(summarySheet, colName, colName, width); err != nil {
			return fmt.Errorf("failed to set summary column width: %w", err)
		}
	}

	return nil
}
