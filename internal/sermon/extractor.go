package sermon

import (
	"errors"
	"fmt"

	"github.com/mwcockerill/sermon-scribe/internal/transcript"
)

// ErrNoSermon reports that a recording contains no extractable sermon. It is
// a normal skip for the orchestrator, not a failure.
var ErrNoSermon = errors.New("no sermon identified")

// Extract returns the sermon text and segments inside the boundary. Segments
// must lie entirely inside the window; a segment straddling an edge is
// dropped, never truncated. Returns ErrNoSermon when the boundary is absent
// or selects nothing.
func Extract(tr *transcript.Transcript, b Boundary) (string, []transcript.Segment, error) {
	if !b.Identified() {
		reason := b.Reasoning
		if reason == "" {
			reason = "classifier reported no boundaries"
		}
		return "", nil, fmt.Errorf("%w: %s", ErrNoSermon, reason)
	}

	start, err := transcript.ParseTimestamp(*b.Start)
	if err != nil {
		return "", nil, fmt.Errorf("sermon start: %w", err)
	}
	end, err := transcript.ParseTimestamp(*b.End)
	if err != nil {
		return "", nil, fmt.Errorf("sermon end: %w", err)
	}

	segments := tr.Slice(start, end)
	if len(segments) == 0 {
		return "", nil, fmt.Errorf("%w: boundary %s - %s selects no segments", ErrNoSermon, *b.Start, *b.End)
	}

	return transcript.Flatten(segments), segments, nil
}
