package processor

import (
	"context"
	"os"
	"path/filepath"
)

// transcriptPath is the fixed temp location of the intermediate transcript.
func (p *implProcessor) transcriptPath() string {
	return filepath.Join(p.cfg.Paths.Temp, "audio_transcript.json")
}

// cleanupTempFile removes a temporary file, logs warning if fails. A file
// that was never written is not an error.
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return
		}
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
