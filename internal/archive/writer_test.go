package archive

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveTextWithTitle(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	path, err := w.SaveText("sermon_2025-01-05_Grace", "Grace and Truth", "In the beginning was the Word.")
	if err != nil {
		t.Fatalf("SaveText() error = %v", err)
	}
	if filepath.Base(path) != "sermon_2025-01-05_Grace.txt" {
		t.Errorf("path = %q, want sermon_2025-01-05_Grace.txt", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Grace and Truth\n\nIn the beginning was the Word."
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}
}

func TestSaveTextWithoutTitle(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	path, err := w.SaveText("sermon_Grace", "", "Sermon body only.")
	if err != nil {
		t.Fatalf("SaveText() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Sermon body only." {
		t.Errorf("file contents = %q, want body only", data)
	}
}

func TestSaveTextCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	w := NewWriter(dir)

	if _, err := w.SaveText("sermon_x", "", "text"); err != nil {
		t.Fatalf("SaveText() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sermon_x.txt")); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestSaveDocx(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	text := "First paragraph of the sermon.\n\nSecond paragraph,\nwrapped across lines."
	path, err := w.SaveDocx("sermon_2025-01-05_Grace", "Grace and Truth", text)
	if err != nil {
		t.Fatalf("SaveDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
	if filepath.Ext(path) != ".docx" {
		t.Errorf("path = %q, want .docx extension", path)
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "blank line separated",
			text: "one\n\ntwo",
			want: []string{"one", "two"},
		},
		{
			name: "inner newlines folded",
			text: "line one\nline two\n\nnext",
			want: []string{"line one line two", "next"},
		},
		{
			name: "empty blocks dropped",
			text: "\n\none\n\n\n\n",
			want: []string{"one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitParagraphs(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("splitParagraphs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("paragraph[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
