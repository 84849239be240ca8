package reader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// NewCharsetReader wraps src so its bytes are decoded from the named
// charset into UTF-8. Legacy Cliente exports are usually Latin-1 or
// Windows-1252; new data is UTF-8.
func NewCharsetReader(src io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return src, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(src, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(src, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (use utf-8, latin-1, or windows-1252)", encoding)
	}
}
