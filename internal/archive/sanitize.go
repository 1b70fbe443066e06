// Package archive manages the output store of produced sermon transcripts:
// canonical artifact names, dedup lookups against existing files, and the
// text and docx writers.
package archive

import (
	"regexp"
	"strings"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

const maxTitleLen = 100

var (
	illegalChars  = strings.NewReplacer("<", "", ">", "", ":", "", `"`, "", "/", "", `\`, "", "|", "", "?", "", "*", "")
	underscoreRun = regexp.MustCompile(`_+`)
)

// SanitizeTitle makes a video title safe for use in a filename: spaces become
// underscores, characters illegal on common filesystems are stripped, runs of
// underscores collapse, edges are trimmed, and the result is capped at 100
// characters.
func SanitizeTitle(title string) string {
	s := strings.ReplaceAll(title, " ", "_")
	s = illegalChars.Replace(s)
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if runes := []rune(s); len(runes) > maxTitleLen {
		s = string(runes[:maxTitleLen])
	}
	return s
}

// FilenameFor returns the canonical artifact stem for a video and its
// resolved date: sermon_<date>_<title>, or sermon_<title> when no date is
// known. Extensions are added by the writers.
func FilenameFor(v video.Video, resolvedDate string) string {
	title := SanitizeTitle(v.Title)
	if resolvedDate != "" {
		return "sermon_" + resolvedDate + "_" + title
	}
	return "sermon_" + title
}
