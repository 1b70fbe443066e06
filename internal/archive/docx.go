package archive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// SaveDocx writes the sermon as a styled Word document alongside the text
// artifact, preserving the cleaned text's paragraph breaks. Returns the
// written file's path.
func (w *Writer) SaveDocx(stem, title, text string) (string, error) {
	if err := EnsureDir(w.dir); err != nil {
		return "", err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create docx: %w", err)
	}

	if title != "" {
		p := doc.AddParagraph("")
		p.AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
		doc.AddParagraph("")
	}

	for _, para := range splitParagraphs(text) {
		p := doc.AddParagraph("")
		p.AddText(para).Font(fontName).Size(fontSize).Color("000000")
	}

	path := filepath.Join(w.dir, stem+".docx")
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}
	return path, nil
}

// splitParagraphs breaks cleaned sermon text on blank lines; single line
// breaks inside a paragraph are folded into spaces.
func splitParagraphs(text string) []string {
	var paras []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		paras = append(paras, strings.Join(strings.Fields(block), " "))
	}
	return paras
}
