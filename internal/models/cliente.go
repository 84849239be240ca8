package models

// clienteFields is the TracciatoRecordClienti catalogue. Offsets are spelled
// out rather than computed so a change to any length shows up as a tiling
// error at startup instead of silently shifting every later field.
var clienteFields = []Field{
	{Name: "progressivo", Length: 8, Type: FieldText, Start: 0},
	{Name: "codice", Length: 6, Type: FieldText, Start: 8},
	{Name: "ragione_sociale", Length: 80, Type: FieldText, Start: 14},
	{Name: "cognome", Length: 20, Type: FieldText, Start: 94},
	{Name: "nome", Length: 20, Type: FieldText, Start: 114},
	{Name: "indirizzo", Length: 40, Type: FieldText, Start: 134},
	{Name: "citta", Length: 40, Type: FieldText, Start: 174},
	{Name: "prov", Length: 3, Type: FieldText, Start: 214},
	{Name: "telefono", Length: 20, Type: FieldText, Start: 217},
	{Name: "telefono2", Length: 20, Type: FieldText, Start: 237},
	{Name: "email", Length: 255, Type: FieldText, Start: 257},
	{Name: "codice_fiscale", Length: 16, Type: FieldText, Start: 512},
	{Name: "parole_chiave", Length: 8, Type: FieldInteger, Start: 528},
	{Name: "partita_iva", Length: 16, Type: FieldText, Start: 536},
	{Name: "bonus", Length: 12, Type: FieldInteger, Start: 552},
	{Name: "libero", Length: 2, Type: FieldBoolean, Start: 564},
	{Name: "cap", Length: 5, Type: FieldText, Start: 566},
	{Name: "note", Length: 255, Type: FieldInteger, Start: 571},
	{Name: "codice_cosmo", Length: 6, Type: FieldText, Start: 826},
	{Name: "banca_cosmo", Length: 6, Type: FieldText, Start: 832},
	{Name: "spedizione", Length: 30, Type: FieldText, Start: 838},
	{Name: "pagamento_cosmo", Length: 6, Type: FieldText, Start: 868},
	{Name: "chiuso", Length: 2, Type: FieldBoolean, Start: 874},
	{Name: "codice_sponsor", Length: 6, Type: FieldText, Start: 876},
	{Name: "sponsor", Length: 2, Type: FieldBoolean, Start: 882},
	{Name: "saldo_sponsor", Length: 12, Type: FieldInteger, Start: 884},
	{Name: "codice_doc", Length: 8, Type: FieldInteger, Start: 896},
	{Name: "stato", Length: 40, Type: FieldText, Start: 904},
	{Name: "scadenza_bonus", Length: 8, Type: FieldDate, Start: 944},
	{Name: "trasferito_promo", Length: 2, Type: FieldBoolean, Start: 952},
	{Name: "titolo", Length: 20, Type: FieldText, Start: 954},
	{Name: "copiaoffertada", Length: 2, Type: FieldBoolean, Start: 974},
	{Name: "codicepromo", Length: 6, Type: FieldText, Start: 976},
	{Name: "promozionale", Length: 2, Type: FieldBoolean, Start: 982},
	{Name: "sitointernet", Length: 255, Type: FieldInteger, Start: 984},
	{Name: "indirizzofiscale", Length: 40, Type: FieldText, Start: 1239},
	{Name: "cittafiscale", Length: 40, Type: FieldText, Start: 1279},
	{Name: "provfiscale", Length: 3, Type: FieldText, Start: 1319},
	{Name: "capfiscale", Length: 5, Type: FieldText, Start: 1322},
	{Name: "nominativofiscale", Length: 80, Type: FieldText, Start: 1327},
	{Name: "edificio", Length: 20, Type: FieldText, Start: 1407},
	{Name: "id", Length: 8, Type: FieldInteger, Start: 1427},
	{Name: "idadvplan", Length: 8, Type: FieldInteger, Start: 1435},
	{Name: "varie", Length: 255, Type: FieldText, Start: 1443},
}

var clienteSpec = mustSpec(clienteFields)

func mustSpec(fields []Field) *Spec {
	s, err := NewSpec(fields)
	if err != nil {
		panic("cliente catalogue: " + err.Error())
	}
	return s
}

// ClienteSpec returns the built-in Cliente record specification
// (44 fields, 1698 characters per record).
func ClienteSpec() *Spec {
	return clienteSpec
}
