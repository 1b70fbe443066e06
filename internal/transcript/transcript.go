// Package transcript holds the timestamped segment model produced by the
// transcription step and consumed by boundary location and extraction.
package transcript

import (
	"strings"
)

// Segment is one timestamped fragment of transcribed speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the full output of transcribing one recording. Segments are
// time-ordered and non-overlapping as produced upstream; nothing here
// re-enforces that.
type Transcript struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language"`
}

// Render formats the segments one per line. With timestamps each line is
// "[HH:MM:SS] text", the form the boundary classifier is prompted against.
func (t *Transcript) Render(withTimestamps bool) string {
	lines := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		if withTimestamps {
			lines = append(lines, "["+FormatTimestamp(seg.Start)+"] "+seg.Text)
		} else {
			lines = append(lines, seg.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// Slice returns the segments fully contained in [start, end]. A segment
// straddling either boundary is dropped, never truncated.
func (t *Transcript) Slice(start, end float64) []Segment {
	var out []Segment
	for _, seg := range t.Segments {
		if seg.Start >= start && seg.End <= end {
			out = append(out, seg)
		}
	}
	return out
}

// Flatten joins segment texts with single spaces, in order.
func Flatten(segments []Segment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, " ")
}
