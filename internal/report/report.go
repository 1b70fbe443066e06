// Package report records the per-video outcomes of one batch run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Status is the terminal state of one video's pass through the pipeline.
type Status string

const (
	StatusPersisted Status = "persisted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
	StatusPlanned   Status = "planned"
)

// Outcome records how one video fared.
type Outcome struct {
	VideoID    string `json:"video_id"`
	Title      string `json:"title"`
	Status     Status `json:"status"`
	Reason     string `json:"reason,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
}

// Report is the full record of one run.
type Report struct {
	RunID      string    `json:"run_id"`
	Mode       string    `json:"mode"`
	Channel    string    `json:"channel,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Outcomes   []Outcome `json:"outcomes"`
}

// New starts a report for one run.
func New(mode, channel string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Mode:      mode,
		Channel:   channel,
		StartedAt: time.Now().UTC(),
	}
}

// Add appends one video's outcome.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Finish stamps the completion time.
func (r *Report) Finish() {
	r.FinishedAt = time.Now().UTC()
}

// Count returns how many outcomes carry the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// PersistedPaths returns the artifact paths of all persisted outcomes, in
// processing order.
func (r *Report) PersistedPaths() []string {
	var paths []string
	for _, o := range r.Outcomes {
		if o.Status == StatusPersisted && o.OutputPath != "" {
			paths = append(paths, o.OutputPath)
		}
	}
	return paths
}

// Save writes the report as run_<timestamp>.json into dir and returns the
// written path.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := fmt.Sprintf("run_%s.json", r.StartedAt.Format("20060102T150405Z"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
