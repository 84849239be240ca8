package models

// LineError notes a line that could not be decoded. The batch keeps going;
// a corrupt line never aborts the read.
type LineError struct {
	Line int    `json:"line"`
	Msg  string `json:"msg"`
}

// Batch is the outcome of reading one input source: the records that
// decoded, in input order, plus any per-line error notes.
type Batch struct {
	Records []*Record
	Errors  []LineError
}
