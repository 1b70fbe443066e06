package discovery

import (
	"testing"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name  string
		video video.Video
		want  string
	}{
		{
			name:  "upload date wins over title date",
			video: video.Video{UploadDate: "2026-01-18", Title: "Sunday Service Jan. 11, 2026"},
			want:  "2026-01-18",
		},
		{
			name:  "month abbreviation format",
			video: video.Video{Title: "Sunday Service Jan. 18, 2026"},
			want:  "2026-01-18",
		},
		{
			name:  "month abbreviation without dot or comma",
			video: video.Video{Title: "Sunday Service Dec 28 2025"},
			want:  "2025-12-28",
		},
		{
			name:  "single digit day is zero padded",
			video: video.Video{Title: "Communion Sunday Feb. 1, 2026"},
			want:  "2026-02-01",
		},
		{
			name:  "spaced numeric format",
			video: video.Video{Title: "Evening Prayer 2026 01 16"},
			want:  "2026-01-16",
		},
		{
			name:  "literal iso format",
			video: video.Video{Title: "Service 2026-01-18 Livestream"},
			want:  "2026-01-18",
		},
		{
			name:  "month format takes priority over iso",
			video: video.Video{Title: "Jan. 18, 2026 rebroadcast of 2025-12-25"},
			want:  "2026-01-18",
		},
		{
			name:  "no date anywhere",
			video: video.Video{Title: "Special Guest Speaker"},
			want:  "",
		},
		{
			name:  "year alone is not a date",
			video: video.Video{Title: "Vision 2026"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDate(tt.video); got != tt.want {
				t.Errorf("ResolveDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
