package sermon

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwcockerill/sermon-scribe/internal/llm"
	"github.com/mwcockerill/sermon-scribe/internal/logger"
)

type implCleaner struct {
	provider llm.Provider
	logger   logger.Logger
}

// NewCleaner creates a Cleaner backed by the given completion provider.
func NewCleaner(p llm.Provider, log logger.Logger) Cleaner {
	return &implCleaner{
		provider: p,
		logger:   log,
	}
}

// Polish rewrites raw sermon text into punctuated, paragraphed prose.
func (c *implCleaner) Polish(ctx context.Context, text string) (string, error) {
	reply, err := c.provider.Complete(ctx, llm.Request{
		SystemPrompt: cleanupPrompt,
		UserPrompt:   "Please clean up this sermon transcript:\n\n" + text,
		Temperature:  0.3,
	})
	if err != nil {
		return "", fmt.Errorf("clean sermon text: %w", err)
	}

	cleaned := strings.TrimSpace(reply)
	if cleaned == "" {
		return "", fmt.Errorf("clean sermon text: empty reply")
	}
	return cleaned, nil
}
