package mockserver

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

var pdfMagic = []byte("%PDF-")

// SamplePDF renders a one page PDF carrying title and body.
func SamplePDF(title, body string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, body, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func isPDF(content []byte) bool {
	return bytes.HasPrefix(content, pdfMagic)
}
