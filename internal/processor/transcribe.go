package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mwcockerill/sermon-scribe/internal/transcript"
)

// whisperOutput mirrors the JSON whisper.cpp writes with -oj. Offsets are
// milliseconds.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (out whisperOutput) transcript() *transcript.Transcript {
	segments := make([]transcript.Segment, 0, len(out.Transcription))
	for _, seg := range out.Transcription {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		segments = append(segments, transcript.Segment{
			Start: float64(seg.Offsets.From) / 1000.0,
			End:   float64(seg.Offsets.To) / 1000.0,
			Text:  text,
		})
	}
	return &transcript.Transcript{
		Text:     transcript.Flatten(segments),
		Segments: segments,
		Language: out.Result.Language,
	}
}

// transcribe runs whisper.cpp over the audio file and returns the parsed
// transcript. The normalized intermediate stays on disk as
// audio_transcript.json until cleanup.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (*transcript.Transcript, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	p.logger.Info(ctx, "Transcribing with %d threads: %s", p.cfg.Whisper.Threads, audioPath)

	// -oj: JSON output with per-segment offsets
	// -l: force language, prevents hallucinated language switches
	// -ml 0: no max segment length, better for long recordings
	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"-ml", "0",
		"--output-file", outputPrefix,
	}
	if p.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", p.cfg.Whisper.Prompt)
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	rawPath := outputPrefix + ".json"
	defer p.cleanupTempFile(ctx, rawPath)

	data, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	tr := out.transcript()
	if len(tr.Segments) == 0 {
		return nil, fmt.Errorf("transcription produced no segments")
	}

	if err := p.saveTranscript(tr); err != nil {
		p.logger.Warn(ctx, "Failed to save intermediate transcript: %v", err)
	}

	p.logger.Info(ctx, "Transcription completed: %d segments (%s)", len(tr.Segments), tr.Language)
	return tr, nil
}

// saveTranscript persists the {text, segments, language} intermediate.
func (p *implProcessor) saveTranscript(tr *transcript.Transcript) error {
	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.transcriptPath(), data, 0644)
}
