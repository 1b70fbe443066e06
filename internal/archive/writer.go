package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists sermon artifacts into the output directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// SaveText writes the cleaned sermon text as <stem>.txt, optionally preceded
// by a title line and a blank line. Returns the written file's path.
func (w *Writer) SaveText(stem, title, text string) (string, error) {
	if err := EnsureDir(w.dir); err != nil {
		return "", err
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(text)

	path := filepath.Join(w.dir, stem+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write sermon text: %w", err)
	}
	return path, nil
}
