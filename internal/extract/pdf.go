// Package extract provides line sources that feed raw statement text into the
// parsing pipeline.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageBreakMarker separates the text of consecutive pages so that formats can
// tell page boundaries apart from ordinary line breaks.
const PageBreakMarker = "--- PAGE BREAK ---"

// PDFSource extracts text lines from a PDF bank statement.
// It implements domain.LineSource.
type PDFSource struct {
	FilePath string
}

// NewPDFSource returns a PDFSource for the given statement file
func NewPDFSource(filePath string) *PDFSource {
	return &PDFSource{FilePath: filePath}
}

// Lines reads the whole PDF and returns its plain text split into lines, in
// document order. The file handle is closed before returning on every path.
func (s *PDFSource) Lines() ([]string, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}

	return SplitLines(text), nil
}

// Text reads the whole PDF and returns its plain text with page break markers
func (s *PDFSource) Text() (string, error) {
	f, r, err := pdf.Open(s.FilePath)
	if err != nil {
		return "", fmt.Errorf("opening pdf file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not abort extraction
			continue
		}

		buf.WriteString(text)
		buf.WriteString("\n" + PageBreakMarker + "\n")
	}

	return buf.String(), nil
}

// SplitLines breaks extracted text into trimmed, non-empty lines
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
