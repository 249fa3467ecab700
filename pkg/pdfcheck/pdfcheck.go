// Package pdfcheck performs a local sanity check on a PDF before it is
// uploaded for conversion, so obvious non-PDFs do not spend quota.
package pdfcheck

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Info describes a checked PDF.
type Info struct {
	Pages int
	Size  int64
}

// Check verifies that the file at path parses as a PDF and returns its
// page count and size.
func Check(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("%s is not a readable PDF: %w", path, err)
	}

	return &Info{Pages: reader.NumPage(), Size: stat.Size()}, nil
}
