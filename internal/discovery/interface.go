package discovery

import (
	"context"

	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// Source defines the interface for listing a channel's uploads, newest first
type Source interface {
	// Feed returns the channel's recent uploads from its RSS feed.
	Feed(ctx context.Context) ([]video.Video, error)
	// Latest lists up to limit of the channel's most recent uploads.
	Latest(ctx context.Context, limit int) ([]video.Video, error)
}

// TranscriptIndex reports whether a video already has a produced transcript
// in the output store.
type TranscriptIndex interface {
	HasTranscript(v video.Video, resolvedDate string) bool
}
