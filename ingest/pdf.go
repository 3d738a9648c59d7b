package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFReader extracts requirement lines from PDF documents. Pages that
// fail text extraction are skipped rather than failing the document.
type PDFReader struct{}

func (r *PDFReader) SupportedFormats() []string { return []string{"pdf"} }

func (r *PDFReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening PDF: %w", err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}
