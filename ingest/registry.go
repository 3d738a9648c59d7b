package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Reader extracts raw requirement lines from one document format.
// Validation happens afterwards in ParseLines, identically for every
// format.
type Reader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
	SupportedFormats() []string
}

// Registry maps file extensions to readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates a registry with the built-in readers.
func NewRegistry() *Registry {
	r := &Registry{readers: make(map[string]Reader)}
	for _, reader := range []Reader{&TextReader{}, &PDFReader{}, &XLSXReader{}} {
		for _, f := range reader.SupportedFormats() {
			r.readers[f] = reader
		}
	}
	return r
}

// Register adds or replaces the reader for a format.
func (r *Registry) Register(format string, reader Reader) {
	r.readers[format] = reader
}

// Get returns the reader for a format.
func (r *Registry) Get(format string) (Reader, error) {
	reader, ok := r.readers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return reader, nil
}

// Load reads a requirement document and returns the validated,
// numbered requirement list.
func (r *Registry) Load(ctx context.Context, path string) ([]Requirement, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	reader, err := r.Get(format)
	if err != nil {
		return nil, err
	}
	lines, err := reader.ReadLines(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}
