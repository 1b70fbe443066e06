package discovery

import (
	"time"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// SelectForProcessing returns the videos needing processing: inside the
// lookback window (or without a resolvable date, which is included rather
// than silently dropped), not title-excluded, and not already represented in
// the output store. Order is preserved.
func SelectForProcessing(videos []video.Video, lookbackDays int, now time.Time, exclusions []string, index TranscriptIndex) []video.Video {
	cutoff := now.AddDate(0, 0, -lookbackDays).Format("2006-01-02")

	var selected []video.Video
	for _, v := range videos {
		if Excluded(v.Title, exclusions) {
			continue
		}

		date := ResolveDate(v)
		// Dates are ISO formatted, so string comparison orders them.
		if date != "" && date < cutoff {
			continue
		}

		if index.HasTranscript(v, date) {
			continue
		}

		selected = append(selected, v)
	}
	return selected
}
