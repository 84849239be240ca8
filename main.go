package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/insightdelivered/cliente-record-reader/internal/api"
	"github.com/insightdelivered/cliente-record-reader/internal/models"
	"github.com/insightdelivered/cliente-record-reader/internal/reader"
	"github.com/insightdelivered/cliente-record-reader/internal/sample"
	"github.com/insightdelivered/cliente-record-reader/internal/writer"
)

const version = "1.0.0"

type options struct {
	output    string
	noExcel   bool
	noSummary bool
	csv       bool
	encoding  string
}

func main() {
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with _clienti.xlsx suffix)")
	noExcelFlag := flag.Bool("no-excel", false, "Skip Excel export")
	noSummaryFlag := flag.Bool("no-summary", false, "Don't include the Summary sheet in the Excel export")
	csvFlag := flag.Bool("csv", false, "Export CSV instead of Excel")
	fieldsFlag := flag.Bool("fields", false, "Show detailed field layout and exit")
	encodingFlag := flag.String("encoding", "utf-8", "Input file encoding: utf-8, latin-1, windows-1252")
	sampleFlag := flag.Int("sample", 5, "Number of sample records to generate when no input file is given")
	serveFlag := flag.String("serve", "", "Start the HTTP API on this address (e.g. :8080) instead of converting files")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Cliente Fixed-Width Record Reader
by Insight Delivered (QEA AutoLens)

Decodes fixed-width Cliente record files (TracciatoRecordClienti,
1698 characters per record) into typed records and exports them as
Excel or CSV with per-field usage statistics.

Usage:
  cliente-record-reader [flags] <input.dat> [input2.dat ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a file to Excel (Cliente_Data + Summary sheets)
  cliente-record-reader clienti.dat

  # CSV output with a legacy charset
  cliente-record-reader --csv --encoding=latin-1 clienti.dat

  # Show the field layout
  cliente-record-reader --fields

  # Generate and convert a sample file
  cliente-record-reader --sample=25

  # Run the HTTP API
  cliente-record-reader --serve=:8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("cliente-record-reader v%s\n", version)
		os.Exit(0)
	}

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *fieldsFlag {
		printFieldLayout()
		os.Exit(0)
	}

	if *serveFlag != "" {
		fmt.Printf("Listening on %s\n", *serveFlag)
		if err := api.NewApp().Listen(*serveFlag); err != nil {
			fatalf("Server failed: %v\n", err)
		}
		return
	}

	opts := options{
		output:    *outputFlag,
		noExcel:   *noExcelFlag,
		noSummary: *noSummaryFlag,
		csv:       *csvFlag,
		encoding:  *encodingFlag,
	}

	inputFiles := flag.Args()
	if len(inputFiles) == 0 {
		fmt.Println("No filename provided. Creating sample data...")
		path := "sample_clienti.dat"
		if err := sample.WriteFile(path, *sampleFlag); err != nil {
			fatalf("Sample generation failed: %v\n", err)
		}
		fmt.Printf("Created sample file %q with %d records\n\n", path, *sampleFlag)
		inputFiles = []string{path}
	}

	for _, inputPath := range inputFiles {
		if err := processFile(inputPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath string, opts options) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	r := &reader.Reader{Spec: models.ClienteSpec(), Encoding: opts.encoding}

	fmt.Printf("Processing: %s\n", inputPath)
	fmt.Printf("  Expected record length: %d characters\n", r.Spec.TotalLength())
	fmt.Printf("  Number of fields: %d\n", len(r.Spec.Fields()))

	batch, err := r.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	fmt.Printf("  Found %d record(s)\n", len(batch.Records))
	for _, e := range batch.Errors {
		fmt.Printf("  Warning: line %d: %s\n", e.Line, e.Msg)
	}

	if len(batch.Records) == 0 {
		fmt.Println("  No valid records found in the file")
		return nil
	}

	printRecordSummaries(batch.Records)
	printFieldAnalysis(r.Spec.Layout(), batch.Records)

	if !opts.noExcel {
		if err := export(inputPath, opts, r.Spec.Layout(), batch.Records); err != nil {
			return err
		}
	} else {
		fmt.Println("  Export skipped (--no-excel flag)")
	}

	return auditLengths(r, inputPath)
}

func export(inputPath string, opts options, layout []models.FieldInfo, records []*models.Record) error {
	outPath := opts.output
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))

	if opts.csv {
		if outPath == "" {
			outPath = base + "_clienti.csv"
		}
		w := &writer.CSVWriter{}
		if err := w.WriteToFile(outPath, layout, records); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	} else {
		if outPath == "" {
			outPath = base + "_clienti.xlsx"
		}
		w := &writer.ExcelWriter{IncludeSummary: !opts.noSummary}
		if err := w.WriteToFile(outPath, layout, records); err != nil {
			return fmt.Errorf("Excel export failed: %w", err)
		}
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return fmt.Errorf("failed to stat output %q: %w", outPath, err)
	}
	fmt.Printf("  Output: %s (%d bytes)\n", outPath, info.Size())
	return nil
}

func printRecordSummaries(records []*models.Record) {
	fmt.Println("\nRecord Details:")
	shown := len(records)
	if shown > 3 {
		shown = 3
	}
	for i := 0; i < shown; i++ {
		r := records[i]
		fmt.Printf("Record #%d:\n", i+1)
		fmt.Printf("  Progressivo: %s\n", r.Text("progressivo"))
		fmt.Printf("  Codice: %s\n", r.Text("codice"))
		fmt.Printf("  Ragione sociale: %s\n", r.Text("ragione_sociale"))
		fmt.Printf("  Nome e Cognome: %s %s\n", r.Text("nome"), r.Text("cognome"))
		fmt.Printf("  Indirizzo: %s, %s (%s)\n", r.Text("indirizzo"), r.Text("citta"), r.Text("prov"))
		fmt.Printf("  Bonus: %d\n", r.Int("bonus"))
		fmt.Printf("  Stato: %s\n", r.Text("stato"))
		if d := r.Date("scadenza_bonus"); !d.IsZero() {
			fmt.Printf("  Scadenza bonus: %s\n", d.Format("2006-01-02"))
		}
		fmt.Println()
	}
	if len(records) > shown {
		fmt.Printf("... and %d more records\n\n", len(records)-shown)
	}
}

func printFieldAnalysis(layout []models.FieldInfo, records []*models.Record) {
	usage := writer.FieldUsage(layout, records)
	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].NonEmpty > usage[j].NonEmpty
	})

	fmt.Println("Field Analysis:")
	fmt.Printf("%-25s %-10s %s\n", "Field Name", "Used", "Usage %")
	fmt.Println(strings.Repeat("-", 45))
	top := len(usage)
	if top > 10 {
		top = 10
	}
	for _, u := range usage[:top] {
		fmt.Printf("%-25s %-10d %.1f%%\n", u.Name, u.NonEmpty, u.Percent)
	}
	fmt.Println()
}

func auditLengths(r *reader.Reader, inputPath string) error {
	results, err := r.AuditFile(inputPath)
	if err != nil {
		return fmt.Errorf("length audit failed: %w", err)
	}

	valid := 0
	for _, res := range results {
		if res.OK {
			valid++
		} else {
			fmt.Printf("  Line %d: invalid length (%d chars, expected %d)\n",
				res.Line, res.Length, r.Spec.TotalLength())
		}
	}

	if valid == len(results) {
		fmt.Printf("  All %d records have valid length\n", valid)
	} else {
		fmt.Printf("  Found %d invalid records out of %d\n", len(results)-valid, len(results))
	}
	fmt.Println("  Done.")
	return nil
}

func printFieldLayout() {
	spec := models.ClienteSpec()
	fmt.Println("Detailed Field Information")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("%-25s %-10s %-7s %-6s %-6s\n", "Field Name", "Type", "Length", "Start", "End")
	fmt.Println(strings.Repeat("-", 70))
	for _, f := range spec.Layout() {
		fmt.Printf("%-25s %-10s %-7d %-6d %-6d\n", f.Name, f.Type, f.Length, f.Start, f.End)
	}
	fmt.Printf("\nTotal record length: %d characters\n", spec.TotalLength())
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
