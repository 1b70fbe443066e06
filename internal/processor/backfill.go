package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwcockerill/sermon-scribe/internal/archive"
	"github.com/mwcockerill/sermon-scribe/internal/discovery"
	"github.com/mwcockerill/sermon-scribe/internal/report"
)

// Backfill scans the channel's recent uploads and processes the ones that
// have no transcript in the output directory yet. One video's failure never
// stops the batch.
func (p *implProcessor) Backfill(ctx context.Context, opts BackfillOptions) (*report.Report, error) {
	rep := report.New("backfill", p.cfg.Channel.ID)
	defer rep.Finish()

	lookback := opts.LookbackDays
	if lookback <= 0 {
		lookback = p.cfg.Filter.LookbackDays
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = p.cfg.Filter.ListingLimit
	}

	p.logger.Info(ctx, "Checking %d recent uploads (lookback %d days)", limit, lookback)

	videos, err := p.source.Latest(ctx, limit)
	if err != nil {
		return rep, fmt.Errorf("list recent uploads: %w", err)
	}

	index, err := archive.LoadIndex(p.cfg.Paths.Output)
	if err != nil {
		return rep, fmt.Errorf("scan output dir: %w", err)
	}
	p.logger.Debug(ctx, "Output dir holds %d existing transcripts", index.Len())

	candidates := discovery.SelectForProcessing(videos, lookback, time.Now(), p.cfg.Filter.Exclusions, index)
	if len(candidates) == 0 {
		p.logger.Info(ctx, "All recent videos already have transcripts")
		return rep, nil
	}

	p.logger.Info(ctx, "%d video(s) need processing:", len(candidates))
	for _, v := range candidates {
		p.logger.Info(ctx, "  - %s (%s)", v.Title, v.ID)
	}

	if opts.DryRun {
		for _, v := range candidates {
			rep.Add(report.Outcome{VideoID: v.ID, Title: v.Title, Status: report.StatusPlanned})
		}
		return rep, nil
	}

	for _, v := range candidates {
		outcome := p.ProcessVideo(ctx, v)
		rep.Add(outcome)
		if outcome.Status == report.StatusPersisted {
			index.Add(strings.TrimSuffix(filepath.Base(outcome.OutputPath), ".txt"))
		}
	}

	p.logger.Info(ctx, "Backfill complete: %d persisted, %d skipped, %d failed",
		rep.Count(report.StatusPersisted), rep.Count(report.StatusSkipped), rep.Count(report.StatusFailed))

	return rep, nil
}
