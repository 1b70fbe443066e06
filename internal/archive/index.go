package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// titlePrefixLen caps how much of the sanitized title the fuzzy date+title
// tier compares.
const titlePrefixLen = 20

// Index answers dedup queries against the output directory's existing
// sermon artifacts.
type Index struct {
	stems []string
}

// LoadIndex scans dir for sermon_*.txt artifacts. A missing directory yields
// an empty index.
func LoadIndex(dir string) (*Index, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "sermon_*.txt"))
	if err != nil {
		return nil, fmt.Errorf("scan output dir: %w", err)
	}

	ix := &Index{stems: make([]string, 0, len(matches))}
	for _, m := range matches {
		base := filepath.Base(m)
		ix.stems = append(ix.stems, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	return ix, nil
}

// Add records a freshly written artifact stem so later videos in the same
// batch dedup against it.
func (ix *Index) Add(stem string) {
	ix.stems = append(ix.stems, stem)
}

// Len returns the number of indexed artifacts.
func (ix *Index) Len() int {
	return len(ix.stems)
}

// HasTranscript reports whether any existing artifact refers to the video.
// Three tiers are tried per stem: raw ID substring, canonical filename
// containment, and shared date plus title prefix.
func (ix *Index) HasTranscript(v video.Video, resolvedDate string) bool {
	canonical := FilenameFor(v, resolvedDate)
	for _, stem := range ix.stems {
		if stemMatches(stem, v, resolvedDate, canonical) {
			return true
		}
	}
	return false
}

func stemMatches(stem string, v video.Video, resolvedDate, canonical string) bool {
	if v.ID != "" && strings.Contains(stem, v.ID) {
		return true
	}
	if strings.Contains(stem, canonical) {
		return true
	}
	return matchDateTitle(stem, resolvedDate, SanitizeTitle(v.Title))
}

// matchDateTitle is the fuzzy tier: the stem carries the same date and a
// shared title prefix, capped at titlePrefixLen. Either side may be the
// shorter one, so a retitled upload still matches its earlier artifact.
func matchDateTitle(stem, date, sanitizedTitle string) bool {
	if date == "" || sanitizedTitle == "" {
		return false
	}
	if !strings.Contains(stem, date) {
		return false
	}

	prefix := sanitizedTitle
	if runes := []rune(prefix); len(runes) > titlePrefixLen {
		prefix = string(runes[:titlePrefixLen])
	}
	if strings.Contains(stem, prefix) {
		return true
	}

	stemPart := stemTitle(stem, date)
	return stemPart != "" && strings.HasPrefix(prefix, stemPart)
}

// stemTitle extracts the title portion of a stem following the date segment.
func stemTitle(stem, date string) string {
	_, after, found := strings.Cut(stem, date)
	if !found {
		return ""
	}
	return strings.Trim(after, "_")
}

// EnsureDir creates the output directory if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
