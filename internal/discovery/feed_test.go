package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwcockerill/sermon-scribe/pkg/executor"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
  <title>Channel uploads</title>
  <entry>
    <id>yt:video:abc123</id>
    <yt:videoId>abc123</yt:videoId>
    <title>Sunday Service Jan. 18, 2026</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=abc123"/>
    <published>2026-01-18T15:00:00+00:00</published>
  </entry>
  <entry>
    <id>yt:video:def456</id>
    <yt:videoId>def456</yt:videoId>
    <title>Sunday Service Jan. 11, 2026</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=def456"/>
    <published>2026-01-11T15:00:00+00:00</published>
  </entry>
</feed>`

func TestFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	src := New("UCchannel", executor.New(), testLogger()).(*implSource)
	src.feedURL = server.URL

	videos, err := src.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("Feed() returned %d videos, want 2", len(videos))
	}

	// Order is preserved, newest first.
	first := videos[0]
	if first.ID != "abc123" {
		t.Errorf("videos[0].ID = %q, want abc123", first.ID)
	}
	if first.Title != "Sunday Service Jan. 18, 2026" {
		t.Errorf("videos[0].Title = %q", first.Title)
	}
	if first.UploadDate != "2026-01-18" {
		t.Errorf("videos[0].UploadDate = %q, want 2026-01-18", first.UploadDate)
	}
	if first.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("videos[0].URL = %q", first.URL)
	}
	if videos[1].ID != "def456" {
		t.Errorf("videos[1].ID = %q, want def456", videos[1].ID)
	}
}

func TestFeedUnreachable(t *testing.T) {
	src := New("UCchannel", executor.New(), testLogger()).(*implSource)
	src.feedURL = "http://127.0.0.1:1/feed"

	if _, err := src.Feed(context.Background()); err == nil {
		t.Fatal("Feed() against unreachable server succeeded, want error")
	}
}
