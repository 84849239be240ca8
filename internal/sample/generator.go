// Package sample generates valid fixed-width Cliente records for demos
// and tests.
package sample

import (
	"fmt"
	"os"
	"strings"

	"github.com/insightdelivered/cliente-record-reader/internal/models"
)

var companies = []string{
	"ACME Corporation SpA",
	"Beta Industries Srl",
	"Gamma Solutions Ltd",
	"Delta Manufacturing",
	"Epsilon Services SA",
}

var names = [][2]string{
	{"Mario", "Rossi"},
	{"Luigi", "Verdi"},
	{"Anna", "Bianchi"},
	{"Paolo", "Neri"},
	{"Maria", "Ferrari"},
}

var cities = [][3]string{
	{"Milano", "MI", "20100"},
	{"Roma", "RM", "00100"},
	{"Napoli", "NA", "80100"},
	{"Torino", "TO", "10100"},
	{"Bologna", "BO", "40100"},
}

var shippings = []string{"Standard", "Express", "Premium"}
var statuses = []string{"Active", "Pending", "Inactive"}
var titles = []string{"Dott.", "Ing.", "Prof.", "Sig."}

// Record builds one valid Cliente line for the 1-based record number.
// Every line is exactly ClienteSpec's total length.
func Record(n int) string {
	company := companies[(n-1)%len(companies)]
	name := names[(n-1)%len(names)]
	city := cities[(n-1)%len(cities)]

	values := map[string]string{
		"progressivo":       fmt.Sprintf("%08d", n),
		"codice":            fmt.Sprintf("CLI%03d", n),
		"ragione_sociale":   company,
		"cognome":           name[1],
		"nome":              name[0],
		"indirizzo":         fmt.Sprintf("Via %s %d", name[1], 100+n),
		"citta":             city[0],
		"prov":              city[1],
		"telefono":          fmt.Sprintf("0%d-%d", n%10, 12345000+n),
		"telefono2":         fmt.Sprintf("33%d-%d", n%10, 1234000+n),
		"email":             fmt.Sprintf("%s.%s@example.it", strings.ToLower(name[0]), strings.ToLower(name[1])),
		"codice_fiscale":    fmt.Sprintf("%s%s80A01F%dX", upper3(name[1]), upper3(name[0]), 200+n),
		"parole_chiave":     fmt.Sprintf("%08d", 12340000+n),
		"partita_iva":       fmt.Sprintf("%d", 12345678000+int64(n)*1000),
		"bonus":             fmt.Sprintf("%012d", 1200+n*100),
		"libero":            fmt.Sprintf(" %d", n%2),
		"cap":               city[2],
		"note":              fmt.Sprintf("%d", n*7),
		"codice_cosmo":      fmt.Sprintf("COS%03d", n),
		"banca_cosmo":       fmt.Sprintf("BAN%03d", n),
		"spedizione":        shippings[n%len(shippings)] + " shipping",
		"pagamento_cosmo":   fmt.Sprintf("PAG%03d", n),
		"chiuso":            fmt.Sprintf(" %d", (n+1)%2),
		"codice_sponsor":    fmt.Sprintf("SPO%03d", n),
		"sponsor":           fmt.Sprintf(" %d", n%2),
		"saldo_sponsor":     fmt.Sprintf("%012d", 5000+n*250),
		"codice_doc":        fmt.Sprintf("%08d", n),
		"stato":             statuses[n%len(statuses)],
		"scadenza_bonus":    fmt.Sprintf("2025%02d%02d", n%12+1, n%28+1),
		"trasferito_promo":  fmt.Sprintf(" %d", (n+1)%2),
		"titolo":            titles[n%len(titles)],
		"copiaoffertada":    fmt.Sprintf(" %d", n%2),
		"codicepromo":       fmt.Sprintf("PROMO%d", n),
		"promozionale":      fmt.Sprintf(" %d", n%2),
		"sitointernet":      fmt.Sprintf("%d", n*3),
		"indirizzofiscale":  fmt.Sprintf("Via %s %d", name[1], 100+n),
		"cittafiscale":      city[0],
		"provfiscale":       city[1],
		"capfiscale":        city[2],
		"nominativofiscale": company,
		"edificio":          fmt.Sprintf("Building %c", 'A'+rune(n%5)),
		"id":                fmt.Sprintf("%08d", n),
		"idadvplan":         fmt.Sprintf("%08d", n),
		"varie":             fmt.Sprintf("Record %d - %s %s from %s", n, name[0], name[1], city[0]),
	}

	spec := models.ClienteSpec()
	var b strings.Builder
	b.Grow(spec.TotalLength())
	for _, f := range spec.Fields() {
		v := values[f.Name]
		if len(v) > f.Length {
			v = v[:f.Length]
		}
		b.WriteString(v)
		b.WriteString(strings.Repeat(" ", f.Length-len(v)))
	}
	return b.String()
}

// Lines builds n sample records.
func Lines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = Record(i + 1)
	}
	return lines
}

// WriteFile writes n sample records to a file, one per line.
func WriteFile(path string, n int) error {
	content := strings.Join(Lines(n), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write sample file %q: %w", path, err)
	}
	return nil
}

func upper3(s string) string {
	s = strings.ToUpper(s)
	if len(s) > 3 {
		return s[:3]
	}
	return s
}
