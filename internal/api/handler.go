// Package api exposes the record decoder over HTTP: upload a fixed-width
// .dat file, get the decoded records and statistics back as JSON or as an
// Excel workbook.
package api

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
	"github.com/insightdelivered/cliente-record-reader/internal/reader"
	"github.com/insightdelivered/cliente-record-reader/internal/writer"
)

const version = "1.0.0"

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool               `json:"success"`
	Error        string             `json:"error,omitempty"`
	Count        int                `json:"count"`
	TotalLength  int                `json:"totalLength"`
	Records      []map[string]any   `json:"records"`
	LineErrors   []models.LineError `json:"lineErrors,omitempty"`
	ValidLines   int                `json:"validLines"`
	InvalidLines int                `json:"invalidLines"`
	Usage        []writer.UsageRow  `json:"usage,omitempty"`
	CSV          string             `json:"csv,omitempty"`
	Version      string             `json:"version,omitempty"`
}

// NewApp builds the configured fiber application.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Get("/api/health", HandleHealth)
	app.Get("/api/layout", HandleLayout)
	app.Post("/api/convert", HandleConvert)

	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
		"engine":  "fiber",
	})
}

// HandleLayout returns the Cliente field layout so clients never have to
// hard-code offsets or types.
func HandleLayout(c *fiber.Ctx) error {
	spec := models.ClienteSpec()
	return c.JSON(fiber.Map{
		"totalLength": spec.TotalLength(),
		"fields":      spec.Layout(),
	})
}

// HandleConvert decodes an uploaded fixed-width file.
//
// Form fields: "file" (required), "encoding" (utf-8 default), "format"
// ("json" default, or "xlsx" for a workbook download), "summary"
// ("false" to omit the workbook summary sheet).
func HandleConvert(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return convertError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	src, err := fh.Open()
	if err != nil {
		return convertError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to open upload: %v", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return convertError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to read upload: %v", err))
	}

	r := &reader.Reader{
		Spec:     models.ClienteSpec(),
		Encoding: c.FormValue("encoding"),
	}

	batch, err := r.Read(bytes.NewReader(data))
	if err != nil {
		return convertError(c, fiber.StatusBadRequest, fmt.Sprintf("Decode failed: %v", err))
	}

	layout := r.Spec.Layout()

	if c.FormValue("format") == "xlsx" {
		w := &writer.ExcelWriter{IncludeSummary: c.FormValue("summary") != "false"}
		var buf bytes.Buffer
		if err := w.Write(&buf, layout, batch.Records); err != nil {
			return convertError(c, fiber.StatusInternalServerError, fmt.Sprintf("Excel export failed: %v", err))
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="clienti.xlsx"`)
		return c.Send(buf.Bytes())
	}

	resp := ConvertResponse{
		Success:     true,
		Count:       len(batch.Records),
		TotalLength: r.Spec.TotalLength(),
		Records:     recordMaps(layout, batch.Records),
		LineErrors:  batch.Errors,
		Usage:       writer.FieldUsage(layout, batch.Records),
		Version:     version,
	}

	audit, err := r.Audit(bytes.NewReader(data))
	if err == nil {
		for _, res := range audit {
			if res.OK {
				resp.ValidLines++
			} else {
				resp.InvalidLines++
			}
		}
	}

	var buf bytes.Buffer
	cw := &writer.CSVWriter{}
	if err := cw.Write(&buf, layout, batch.Records); err == nil {
		resp.CSV = buf.String()
	}

	return c.JSON(resp)
}

func recordMaps(layout []models.FieldInfo, records []*models.Record) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, r := range records {
		m := make(map[string]any, len(layout))
		for _, f := range layout {
			v, _ := r.Get(f.Name)
			if f.Type == models.FieldDate {
				m[f.Name] = writer.FormatCell(v)
			} else {
				m[f.Name] = v
			}
		}
		out[i] = m
	}
	return out
}

func convertError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
		Records: []map[string]any{},
	})
}
