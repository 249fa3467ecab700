package pdftables

import "context"

// CSV converts the PDF at pdfPath to CSV. With an empty csvPath the
// result is returned as a string.
func (c *Client) CSV(ctx context.Context, pdfPath, csvPath string) (string, error) {
	b, err := c.Convert(ctx, pdfPath, csvPath, FormatCSV)
	return string(b), err
}

// HTML converts the PDF at pdfPath to HTML. With an empty htmlPath the
// result is returned as a string.
func (c *Client) HTML(ctx context.Context, pdfPath, htmlPath string) (string, error) {
	b, err := c.Convert(ctx, pdfPath, htmlPath, FormatHTML)
	return string(b), err
}

// XML converts the PDF at pdfPath to XML. With an empty xmlPath the
// result is returned as a string.
func (c *Client) XML(ctx context.Context, pdfPath, xmlPath string) (string, error) {
	b, err := c.Convert(ctx, pdfPath, xmlPath, FormatXML)
	return string(b), err
}

// XLSX converts the PDF at pdfPath to an XLSX workbook with one sheet
// per page. With an empty xlsxPath the result is returned as bytes.
func (c *Client) XLSX(ctx context.Context, pdfPath, xlsxPath string) ([]byte, error) {
	return c.XLSXMultiple(ctx, pdfPath, xlsxPath)
}

// XLSXSingle converts the PDF at pdfPath to an XLSX workbook with all
// tables on a single sheet.
func (c *Client) XLSXSingle(ctx context.Context, pdfPath, xlsxPath string) ([]byte, error) {
	return c.Convert(ctx, pdfPath, xlsxPath, FormatXLSXSingle)
}

// XLSXMultiple converts the PDF at pdfPath to an XLSX workbook with one
// sheet per page.
func (c *Client) XLSXMultiple(ctx context.Context, pdfPath, xlsxPath string) ([]byte, error) {
	return c.Convert(ctx, pdfPath, xlsxPath, FormatXLSXMultiple)
}
