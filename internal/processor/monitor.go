package processor

import (
	"context"
	"fmt"

	"github.com/mwcockerill/sermon-scribe/internal/discovery"
	"github.com/mwcockerill/sermon-scribe/internal/report"
)

// Monitor checks the channel feed and processes every new eligible upload.
// Each video is marked in the state file before it is processed, so a crash
// mid-pipeline can drop that one video; the next run never re-finds it.
func (p *implProcessor) Monitor(ctx context.Context) (*report.Report, error) {
	rep := report.New("monitor", p.cfg.Channel.ID)
	defer rep.Finish()

	videos, err := p.source.Feed(ctx)
	if err != nil {
		return rep, fmt.Errorf("check feed: %w", err)
	}
	if len(videos) == 0 {
		p.logger.Info(ctx, "Feed is empty")
		return rep, nil
	}

	st := p.tracker.Load()
	if st.LastVideoID == nil {
		// Cold start: record the newest upload as the baseline and
		// process nothing. Never backfills on first run.
		if err := p.tracker.MarkProcessed(videos[0].ID); err != nil {
			return rep, fmt.Errorf("initialize state: %w", err)
		}
		p.logger.Info(ctx, "Initialized state with latest video: %s", videos[0].Title)
		return rep, nil
	}

	newVideos := discovery.FindNew(videos, *st.LastVideoID, p.cfg.Filter.Exclusions)
	if len(newVideos) == 0 {
		p.logger.Info(ctx, "No new videos found")
		return rep, nil
	}

	p.logger.Info(ctx, "Found %d new video(s)", len(newVideos))
	for _, v := range newVideos {
		p.logger.Info(ctx, "  - %s", v.Title)
	}

	// Oldest first, so lastVideoId only ever advances toward the head of
	// the feed as each video is marked.
	for i := len(newVideos) - 1; i >= 0; i-- {
		v := newVideos[i]
		if err := p.tracker.MarkProcessed(v.ID); err != nil {
			return rep, fmt.Errorf("mark %s processed: %w", v.ID, err)
		}
		rep.Add(p.ProcessVideo(ctx, v))
	}

	p.logger.Info(ctx, "Monitor complete: %d persisted, %d skipped, %d failed",
		rep.Count(report.StatusPersisted), rep.Count(report.StatusSkipped), rep.Count(report.StatusFailed))

	return rep, nil
}
