package discovery

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// titleDatePatterns are tried in priority order; the first match wins. New
// title formats are added here, not as extra branches in ResolveDate.
var titleDatePatterns = []struct {
	re      *regexp.Regexp
	resolve func(m []string) string
}{
	{
		// "Jan. 18, 2026" and variants without the dot or comma.
		re: regexp.MustCompile(`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(\d{1,2}),?\s+(\d{4})`),
		resolve: func(m []string) string {
			day, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%s-%s-%02d", m[3], monthNumbers[m[1]], day)
		},
	},
	{
		// "2026 01 18", used by some recurring upload titles.
		re: regexp.MustCompile(`(\d{4})\s+(\d{2})\s+(\d{2})`),
		resolve: func(m []string) string {
			return m[1] + "-" + m[2] + "-" + m[3]
		},
	},
	{
		// A literal "2026-01-18" anywhere in the title.
		re: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
		resolve: func(m []string) string {
			return m[1]
		},
	},
}

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// ResolveDate returns the video's effective date as YYYY-MM-DD, preferring
// the platform upload date and falling back to date patterns in the title.
// Returns "" when no date can be resolved.
func ResolveDate(v video.Video) string {
	if v.UploadDate != "" {
		return v.UploadDate
	}
	return DateFromTitle(v.Title)
}

// DateFromTitle extracts a YYYY-MM-DD date from free-text titles, or returns
// "" if no known pattern matches.
func DateFromTitle(title string) string {
	for _, p := range titleDatePatterns {
		if m := p.re.FindStringSubmatch(title); m != nil {
			return p.resolve(m)
		}
	}
	return ""
}
