package discovery

import (
	"strings"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// DefaultExclusions skips recurring daily content that is not a full service
// recording.
var DefaultExclusions = []string{"Daily", "Morning"}

// FindNew returns the videos strictly newer than lastVideoID in the
// newest-first list, minus excluded titles, preserving order. An empty
// lastVideoID means cold start: the caller records the newest video as the
// baseline instead of backfilling, so nothing is returned here. If
// lastVideoID no longer appears in the list, every listed video is new.
func FindNew(videos []video.Video, lastVideoID string, exclusions []string) []video.Video {
	if lastVideoID == "" {
		return nil
	}

	var fresh []video.Video
	for _, v := range videos {
		if v.ID == lastVideoID {
			break
		}
		if Excluded(v.Title, exclusions) {
			continue
		}
		fresh = append(fresh, v)
	}
	return fresh
}

// Excluded reports whether the title contains any of the exclusion terms.
// Matching is case-sensitive substring containment.
func Excluded(title string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(title, term) {
			return true
		}
	}
	return false
}
