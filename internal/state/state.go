// Package state persists the monitor's progress marker: the most recently
// processed video and the time of the last check.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// State is the persisted progress record. Nil fields serialize as JSON null.
type State struct {
	LastVideoID *string `json:"lastVideoId"`
	LastCheck   *string `json:"lastCheckTimestamp"`
}

// Tracker reads and writes the state file. A missing or unreadable file is
// treated as empty state rather than an error, so a corrupted store costs a
// possible re-processing of recent videos instead of a halt.
type Tracker struct {
	path string
}

// NewTracker creates a Tracker bound to the given file path.
func NewTracker(path string) *Tracker {
	return &Tracker{path: path}
}

// Load returns the persisted state, or empty state if none can be read.
func (t *Tracker) Load() State {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return State{}
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}
	}
	return s
}

// Save stamps the last-check time with current UTC and overwrites the state
// file atomically (temp file in the same directory, then rename).
func (t *Tracker) Save(s State) error {
	now := time.Now().UTC().Format(time.RFC3339)
	s.LastCheck = &now

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpName, t.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// MarkProcessed records a video as the most recently processed one.
func (t *Tracker) MarkProcessed(videoID string) error {
	s := t.Load()
	s.LastVideoID = &videoID
	return t.Save(s)
}
