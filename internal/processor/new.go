package processor

import (
	"github.com/mwcockerill/sermon-scribe/internal/archive"
	"github.com/mwcockerill/sermon-scribe/internal/config"
	"github.com/mwcockerill/sermon-scribe/internal/discovery"
	"github.com/mwcockerill/sermon-scribe/internal/logger"
	"github.com/mwcockerill/sermon-scribe/internal/sermon"
	"github.com/mwcockerill/sermon-scribe/internal/state"
	"github.com/mwcockerill/sermon-scribe/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	source   discovery.Source
	tracker  *state.Tracker
	writer   *archive.Writer
	locator  sermon.Locator
	cleaner  sermon.Cleaner
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, source discovery.Source, tracker *state.Tracker, writer *archive.Writer, locator sermon.Locator, cleaner sermon.Cleaner, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		source:   source,
		tracker:  tracker,
		writer:   writer,
		locator:  locator,
		cleaner:  cleaner,
		executor: exec,
		logger:   log,
	}
}
