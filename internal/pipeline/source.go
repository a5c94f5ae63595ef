package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tripod-nlp/tripod/internal/extract"
)

// Document is one raw input to the extraction pipeline.
type Document struct {
	Name string // Base name of the file, or "-" for stdin
	Text string // Raw text after optional HTML stripping
}

// ReadDocument loads a document from a path, or from stdin when the path
// is "-". Files ending in .html or .htm are reduced to their visible text
// first; everything else is treated as plain text.
func ReadDocument(path string) (*Document, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &Document{Name: "-", Text: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = extract.VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("parse HTML %s: %w", path, err)
		}
	}

	return &Document{Name: filepath.Base(path), Text: text}, nil
}
