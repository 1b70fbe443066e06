package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const downloadTimeout = 600 * time.Second

// downloadAudio fetches an upload's audio track as mp3 into the temp
// directory, at the fixed name the rest of the pipeline expects.
func (p *implProcessor) downloadAudio(ctx context.Context, url string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	p.logger.Info(ctx, "Downloading audio: %s", url)

	outTemplate := filepath.Join(p.cfg.Paths.Temp, "audio.%(ext)s")
	args := []string{
		"-x",
		"--audio-format", "mp3",
		"-o", outTemplate,
		url,
	}

	if _, err := p.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	audioPath := filepath.Join(p.cfg.Paths.Temp, "audio.mp3")
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file not found after download: %w", err)
	}

	p.logger.Info(ctx, "Audio downloaded: %s", audioPath)
	return audioPath, nil
}
