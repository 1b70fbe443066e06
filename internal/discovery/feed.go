package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

const feedURLTemplate = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// Feed fetches and parses the channel's RSS feed. YouTube feeds list entries
// newest first; that order is preserved.
func (s *implSource) Feed(ctx context.Context) ([]video.Video, error) {
	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	videos := make([]video.Video, 0, len(feed.Items))
	for _, item := range feed.Items {
		id := feedVideoID(item)
		if id == "" {
			s.logger.Warn(ctx, "Feed entry without video id: %q", item.Title)
			continue
		}

		v := video.Video{
			ID:    id,
			Title: item.Title,
			URL:   video.WatchURL(id),
		}
		if item.PublishedParsed != nil {
			v.UploadDate = item.PublishedParsed.Format("2006-01-02")
		}
		videos = append(videos, v)
	}

	return videos, nil
}

// feedVideoID extracts the video id from a feed entry, preferring the yt
// namespace extension and falling back to the "yt:video:<id>" GUID form.
func feedVideoID(item *gofeed.Item) string {
	if ids := item.Extensions["yt"]["videoId"]; len(ids) > 0 && ids[0].Value != "" {
		return ids[0].Value
	}
	if id, ok := strings.CutPrefix(item.GUID, "yt:video:"); ok && id != "" {
		return id
	}
	return ""
}
