package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// extractAudio converts a recording to 16kHz mono WAV, the input format
// whisper.cpp expects. Works for both downloaded mp3s and dropped-in
// video recordings.
func (p *implProcessor) extractAudio(ctx context.Context, inputPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	audioPath := filepath.Join(p.cfg.Paths.Temp, "audio.wav")

	p.logger.Info(ctx, "Extracting audio: %s", inputPath)

	// -vn: drop any video stream
	// -ar 16000 -ac 1: 16kHz mono
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
