// Package reader reads fixed-width record files: it iterates lines,
// skips blanks, decodes each line into a typed record, and collects
// per-line anomalies without aborting the batch.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
	"github.com/insightdelivered/cliente-record-reader/internal/parser"
)

// maxLineSize bounds a single input line. Cliente records are 1698
// characters; 1MB leaves generous headroom for oversized lines.
const maxLineSize = 1 << 20

// Reader decodes a fixed-width record source.
//
// Encoding selects the source charset ("utf-8" when empty; see
// NewCharsetReader for the supported names). It is fixed per read.
type Reader struct {
	Spec     *models.Spec
	Encoding string
}

// New returns a Reader over the given spec with the default encoding.
func New(spec *models.Spec) *Reader {
	return &Reader{Spec: spec}
}

// Read consumes the source line by line and returns the batch of decoded
// records plus any per-line error notes, both in input order.
//
// Line terminators are stripped and do not count toward record length.
// Blank and whitespace-only lines are skipped. A line that fails to
// decode is recorded as an error note and the read continues.
func (r *Reader) Read(src io.Reader) (*models.Batch, error) {
	decoded, err := NewCharsetReader(src, r.Encoding)
	if err != nil {
		return nil, err
	}

	batch := &models.Batch{}
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parser.DecodeLine(r.Spec, line)
		if err != nil {
			batch.Errors = append(batch.Errors, models.LineError{
				Line: lineNum,
				Msg:  err.Error(),
			})
			continue
		}
		batch.Records = append(batch.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return batch, nil
}

// ReadFile opens and reads a record file. The file is closed on every
// return path.
func (r *Reader) ReadFile(path string) (*models.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	return r.Read(f)
}

// ValidateLength reports whether a line, after terminator stripping, is
// exactly the spec's total length in characters. It never blocks decoding:
// short and long lines still decode, this is a structural audit only.
func (r *Reader) ValidateLength(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	return utf8.RuneCountInString(line) == r.Spec.TotalLength()
}

// LengthResult is one line's structural audit outcome.
type LengthResult struct {
	Line   int  `json:"line"`
	Length int  `json:"length"`
	OK     bool `json:"ok"`
}

// AuditFile checks every non-blank line of a file against the spec's
// total length, without decoding.
func (r *Reader) AuditFile(path string) ([]LengthResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	return r.Audit(f)
}

// Audit checks every non-blank line of the source against the spec's
// total length, without decoding.
func (r *Reader) Audit(src io.Reader) ([]LengthResult, error) {
	decoded, err := NewCharsetReader(src, r.Encoding)
	if err != nil {
		return nil, err
	}

	var results []LengthResult
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, LengthResult{
			Line:   lineNum,
			Length: utf8.RuneCountInString(line),
			OK:     r.ValidateLength(line),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return results, nil
}
