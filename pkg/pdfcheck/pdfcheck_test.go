package pdfcheck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// buildMinimalPDF assembles a one-page PDF with a correct xref table,
// computing object offsets as it writes.
func buildMinimalPDF() []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 4)
	writeObj := func(n int, body string) {
		offsets[n] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", n, body)
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")

	xref := b.Len()
	b.WriteString("xref\n0 4\n")
	b.WriteString("0000000000 65535 f \n")
	for n := 1; n <= 3; n++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}

func TestCheck_ValidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valid.pdf")
	if err := os.WriteFile(path, buildMinimalPDF(), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := Check(path)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if info.Pages != 1 {
		t.Errorf("Pages = %d, want 1", info.Pages)
	}
	if info.Size == 0 {
		t.Error("Size = 0, want non-zero")
	}
}

func TestCheck_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pdf")
	if err := os.WriteFile(path, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Check(path); err == nil {
		t.Error("Check() error = nil, want parse failure")
	}
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "absent.pdf"))
	if !os.IsNotExist(err) {
		t.Errorf("Check() error = %v, want not-exist", err)
	}
}
