package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TextReader handles plain text (.txt) requirement lists, one
// requirement per line.
type TextReader struct{}

func (r *TextReader) SupportedFormats() []string { return []string{"txt"} }

func (r *TextReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading text file: %w", err)
	}
	return strings.Split(string(data), "\n"), nil
}
