package pdftables

import (
	"fmt"
	"path/filepath"
)

// Format identifies an output format supported by the conversion service.
type Format string

const (
	// FormatCSV produces comma separated values.
	FormatCSV Format = "csv"
	// FormatHTML produces an HTML table document.
	FormatHTML Format = "html"
	// FormatXML produces an XML document.
	FormatXML Format = "xml"
	// FormatXLSXSingle produces a workbook with all tables on one sheet.
	FormatXLSXSingle Format = "xlsx-single"
	// FormatXLSXMultiple produces a workbook with one sheet per page.
	FormatXLSXMultiple Format = "xlsx-multiple"
	// FormatXLSX is an alias for FormatXLSXMultiple.
	FormatXLSX Format = FormatXLSXMultiple
)

// DefaultFormat is used when neither an output path nor a format is given.
const DefaultFormat = FormatXLSXMultiple

// formatExts maps each format token to its canonical file extension.
var formatExts = map[Format]string{
	FormatCSV:          ".csv",
	FormatHTML:         ".html",
	FormatXML:          ".xml",
	FormatXLSXSingle:   ".xlsx",
	FormatXLSXMultiple: ".xlsx",
}

// extFormats maps a recognized extension back to a format. Both XLSX
// variants share .xlsx, which resolves to the default variant.
var extFormats = map[string]Format{
	".csv":  FormatCSV,
	".html": FormatHTML,
	".xlsx": FormatXLSXMultiple,
	".xml":  FormatXML,
}

// textFormats holds the formats whose response bodies are text rather
// than binary.
var textFormats = map[Format]bool{
	FormatCSV:  true,
	FormatHTML: true,
	FormatXML:  true,
}

// ParseFormat validates a free-form format token and returns the
// corresponding Format. The token "xlsx" resolves to FormatXLSXMultiple.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if f == "xlsx" {
		return FormatXLSXMultiple, nil
	}
	if _, ok := formatExts[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return f, nil
}

// IsText reports whether the format's response body is text.
func (f Format) IsText() bool {
	return textFormats[f]
}

// Ext returns the canonical file extension for the format, including the
// leading dot.
func (f Format) Ext() string {
	return formatExts[f]
}

// ResolveOutput determines the definitive output format and corrects the
// output path's extension to match it.
//
// An empty outPath means in-memory output: the path is left empty and the
// format defaults to DefaultFormat when unset. Otherwise the format is
// inferred from the path's extension when unset, and the canonical
// extension is appended (never substituted) whenever the existing one does
// not match the resolved format.
func ResolveOutput(outPath string, format Format) (string, Format, error) {
	if format != "" {
		var err error
		if format, err = ParseFormat(string(format)); err != nil {
			return "", "", err
		}
	}

	if outPath == "" {
		if format == "" {
			format = DefaultFormat
		}
		return "", format, nil
	}

	ext := filepath.Ext(outPath)

	if format == "" {
		if f, ok := extFormats[ext]; ok {
			format = f
		} else {
			format = DefaultFormat
		}
	}

	if _, recognized := extFormats[ext]; !recognized || ext != formatExts[format] {
		outPath += formatExts[format]
	}

	return outPath, format, nil
}
