package processor

import (
	"context"

	"github.com/mwcockerill/sermon-scribe/internal/report"
	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// BackfillOptions adjusts one backfill run.
type BackfillOptions struct {
	LookbackDays int
	Limit        int
	DryRun       bool
}

// Processor runs recordings through the sermon extraction pipeline.
type Processor interface {
	// ProcessVideo takes one upload through the full pipeline: download
	// audio, transcribe, locate the sermon, extract, clean, persist.
	ProcessVideo(ctx context.Context, v video.Video) report.Outcome

	// ProcessLocal runs a local recording through the same pipeline,
	// skipping discovery and download.
	ProcessLocal(ctx context.Context, path string) error

	// Monitor checks the channel feed and processes every new eligible
	// upload.
	Monitor(ctx context.Context) (*report.Report, error)

	// Backfill scans recent uploads and processes the ones that have no
	// transcript yet.
	Backfill(ctx context.Context, opts BackfillOptions) (*report.Report, error)
}
