package sermon

import (
	"context"
	"fmt"

	"github.com/mwcockerill/sermon-scribe/internal/llm"
	"github.com/mwcockerill/sermon-scribe/internal/logger"
)

type implLocator struct {
	provider llm.Provider
	logger   logger.Logger
}

// NewLocator creates a Locator backed by the given completion provider.
func NewLocator(p llm.Provider, log logger.Logger) Locator {
	return &implLocator{
		provider: p,
		logger:   log,
	}
}

// Locate asks the classifier for sermon boundaries. The reply must decode to
// the boundary schema; a reply that does not is an error for this video and
// is not retried. Timestamps are passed through unverified, the extractor
// enforces them against the transcript.
func (l *implLocator) Locate(ctx context.Context, transcriptText string) (Boundary, error) {
	reply, err := l.provider.Complete(ctx, llm.Request{
		SystemPrompt: locatePrompt,
		UserPrompt:   "Here is the church service transcript:\n\n" + transcriptText,
		Temperature:  0.1,
		JSONOnly:     true,
	})
	if err != nil {
		return Boundary{}, fmt.Errorf("locate boundaries: %w", err)
	}

	var b Boundary
	if err := llm.DecodeJSON(reply, &b); err != nil {
		return Boundary{}, fmt.Errorf("locate boundaries: %w", err)
	}

	if b.Identified() {
		l.logger.Info(ctx, "Sermon located: %s - %s (confidence: %s)", *b.Start, *b.End, b.Confidence)
	} else {
		l.logger.Info(ctx, "No sermon identified: %s", b.Reasoning)
	}
	return b, nil
}
