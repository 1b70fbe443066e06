package discovery

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/mwcockerill/sermon-scribe/internal/logger"
	"github.com/mwcockerill/sermon-scribe/pkg/executor"
)

const (
	feedTimeout    = 30 * time.Second
	listingTimeout = 60 * time.Second

	// defaultListingLimit bounds how many uploads Latest asks for.
	defaultListingLimit = 20
)

type implSource struct {
	channelID      string
	feedURL        string
	parser         *gofeed.Parser
	executor       executor.Executor
	logger         logger.Logger
	listingTimeout time.Duration
}

// New creates a new Source for the given channel
func New(channelID string, exec executor.Executor, log logger.Logger) Source {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: feedTimeout}

	return &implSource{
		channelID:      channelID,
		feedURL:        fmt.Sprintf(feedURLTemplate, channelID),
		parser:         parser,
		executor:       exec,
		logger:         log,
		listingTimeout: listingTimeout,
	}
}
