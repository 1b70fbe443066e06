package discovery

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// Latest lists the channel's most recent uploads with yt-dlp. The flat
// playlist listing is fast but often reports upload dates as NA; the recency
// filter falls back to title dates in that case.
func (s *implSource) Latest(ctx context.Context, limit int) ([]video.Video, error) {
	if limit <= 0 {
		limit = defaultListingLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.listingTimeout)
	defer cancel()

	channelURL := fmt.Sprintf("https://www.youtube.com/channel/%s/videos", s.channelID)
	out, err := s.executor.Execute(ctx, "yt-dlp",
		"--flat-playlist",
		"--playlist-end", strconv.Itoa(limit),
		"--print", "%(id)s\t%(title)s\t%(upload_date)s",
		channelURL,
	)
	if err != nil {
		return nil, fmt.Errorf("list channel uploads: %w", err)
	}

	return parseListing(out), nil
}

// parseListing turns tab-separated yt-dlp print lines into videos. Lines with
// missing fields are dropped.
func parseListing(out string) []video.Video {
	var videos []video.Video
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}

		id := strings.TrimSpace(parts[0])
		if id == "" || id == "NA" {
			continue
		}

		videos = append(videos, video.Video{
			ID:         id,
			Title:      strings.TrimSpace(parts[1]),
			UploadDate: normalizeUploadDate(parts[2]),
			URL:        video.WatchURL(id),
		})
	}
	return videos
}

// normalizeUploadDate converts yt-dlp's YYYYMMDD form to YYYY-MM-DD. An "NA"
// or unparseable value means the date is unknown.
func normalizeUploadDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" || date == "NA" {
		return ""
	}
	if len(date) == 8 {
		if _, err := time.Parse("20060102", date); err == nil {
			return date[:4] + "-" + date[4:6] + "-" + date[6:8]
		}
	}
	if _, err := time.Parse("2006-01-02", date); err == nil {
		return date
	}
	return ""
}
