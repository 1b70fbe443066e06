package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwcockerill/sermon-scribe/internal/archive"
	"github.com/mwcockerill/sermon-scribe/internal/discovery"
	"github.com/mwcockerill/sermon-scribe/internal/report"
	"github.com/mwcockerill/sermon-scribe/internal/sermon"
	"github.com/mwcockerill/sermon-scribe/internal/transcript"
	"github.com/mwcockerill/sermon-scribe/internal/video"
)

// ProcessVideo orchestrates the entire extraction pipeline for one upload.
// Every failure is terminal for this video only; the caller moves on to the
// next candidate.
func (p *implProcessor) ProcessVideo(ctx context.Context, v video.Video) report.Outcome {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing: %s (%s)", v.Title, v.ID)
	p.logger.Info(ctx, "========================================")

	// Step 1: Download audio
	mp3Path, err := p.downloadAudio(ctx, v.URL)
	if err != nil {
		return p.failed(ctx, v, fmt.Errorf("download audio: %w", err))
	}
	defer p.cleanupTempFile(ctx, mp3Path)

	// Step 2: Convert to the format whisper expects
	wavPath, err := p.extractAudio(ctx, mp3Path)
	if err != nil {
		return p.failed(ctx, v, fmt.Errorf("extract audio: %w", err))
	}
	defer p.cleanupTempFile(ctx, wavPath)

	// Step 3: Transcribe
	tr, err := p.transcribe(ctx, wavPath)
	if err != nil {
		return p.failed(ctx, v, fmt.Errorf("transcribe: %w", err))
	}
	defer p.cleanupTempFile(ctx, p.transcriptPath())

	// Steps 4-6: Locate boundaries, extract, clean
	cleaned, err := p.sermonText(ctx, tr)
	if err != nil {
		if errors.Is(err, sermon.ErrNoSermon) {
			p.logger.Info(ctx, "Skipping %s: %v", v.ID, err)
			return report.Outcome{VideoID: v.ID, Title: v.Title, Status: report.StatusSkipped, Reason: err.Error()}
		}
		return p.failed(ctx, v, err)
	}

	// Step 7: Persist
	outputPath, err := p.persist(ctx, v, cleaned)
	if err != nil {
		return p.failed(ctx, v, fmt.Errorf("persist: %w", err))
	}

	p.logger.Info(ctx, "Completed %s in %s", v.ID, time.Since(startTime).Round(time.Second))
	return report.Outcome{VideoID: v.ID, Title: v.Title, Status: report.StatusPersisted, OutputPath: outputPath}
}

// ProcessLocal runs a local recording through the pipeline, skipping
// discovery and download. The filename stem serves as the title.
func (p *implProcessor) ProcessLocal(ctx context.Context, path string) error {
	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing recording: %s", path)
	p.logger.Info(ctx, "========================================")

	wavPath, err := p.extractAudio(ctx, path)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, wavPath)

	tr, err := p.transcribe(ctx, wavPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	defer p.cleanupTempFile(ctx, p.transcriptPath())

	cleaned, err := p.sermonText(ctx, tr)
	if err != nil {
		if errors.Is(err, sermon.ErrNoSermon) {
			p.logger.Info(ctx, "Skipping %s: %v", base, err)
			return nil
		}
		return err
	}

	if _, err := p.persist(ctx, video.Video{Title: title}, cleaned); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}

// sermonText takes a full-service transcript to cleaned sermon text. A
// sermon.ErrNoSermon return means the recording holds no extractable sermon
// and should be skipped, not failed.
func (p *implProcessor) sermonText(ctx context.Context, tr *transcript.Transcript) (string, error) {
	boundary, err := p.locator.Locate(ctx, tr.Render(true))
	if err != nil {
		return "", fmt.Errorf("locate sermon: %w", err)
	}

	raw, segments, err := sermon.Extract(tr, boundary)
	if err != nil {
		return "", err
	}
	p.logger.Info(ctx, "Found sermon: %s - %s (%d segments, confidence %s)",
		*boundary.Start, *boundary.End, len(segments), boundary.Confidence)

	cleaned, err := p.cleaner.Polish(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("clean sermon text: %w", err)
	}
	return cleaned, nil
}

// persist writes the cleaned sermon into the output archive under its
// canonical name, plus the optional docx twin.
func (p *implProcessor) persist(ctx context.Context, v video.Video, cleaned string) (string, error) {
	stem := archive.FilenameFor(v, discovery.ResolveDate(v))

	outputPath, err := p.writer.SaveText(stem, v.Title, cleaned)
	if err != nil {
		return "", err
	}

	if p.cfg.Archive.DocxExport {
		if _, err := p.writer.SaveDocx(stem, v.Title, cleaned); err != nil {
			p.logger.Warn(ctx, "Failed to write docx twin: %v", err)
		}
	}

	p.logger.Info(ctx, "Saved: %s", outputPath)
	return outputPath, nil
}

func (p *implProcessor) failed(ctx context.Context, v video.Video, err error) report.Outcome {
	p.logger.Error(ctx, "Failed %s: %v", v.ID, err)
	return report.Outcome{VideoID: v.ID, Title: v.Title, Status: report.StatusFailed, Reason: err.Error()}
}
