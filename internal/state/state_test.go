package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	tracker := NewTracker(filepath.Join(t.TempDir(), "state.json"))

	s := tracker.Load()
	if s.LastVideoID != nil {
		t.Errorf("LastVideoID = %v, want nil", *s.LastVideoID)
	}
	if s.LastCheck != nil {
		t.Errorf("LastCheck = %v, want nil", *s.LastCheck)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewTracker(path).Load()
	if s.LastVideoID != nil || s.LastCheck != nil {
		t.Errorf("Load() on corrupt file = %+v, want empty state", s)
	}
}

func TestSaveStampsTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	tracker := NewTracker(path)

	id := "abc123"
	before := time.Now().UTC().Add(-time.Second)
	if err := tracker.Save(State{LastVideoID: &id}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	after := time.Now().UTC().Add(time.Second)

	s := tracker.Load()
	if s.LastVideoID == nil || *s.LastVideoID != "abc123" {
		t.Errorf("LastVideoID = %v, want abc123", s.LastVideoID)
	}
	if s.LastCheck == nil {
		t.Fatal("LastCheck is nil after Save")
	}
	stamp, err := time.Parse(time.RFC3339, *s.LastCheck)
	if err != nil {
		t.Fatalf("LastCheck %q is not RFC3339: %v", *s.LastCheck, err)
	}
	if stamp.Before(before) || stamp.After(after) {
		t.Errorf("LastCheck %v outside [%v, %v]", stamp, before, after)
	}
}

func TestSaveUsesExpectedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	id := "vid42"
	if err := NewTracker(path).Save(State{LastVideoID: &id}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("state file is not valid JSON: %v", err)
	}
	if _, ok := raw["lastVideoId"]; !ok {
		t.Error("state file missing lastVideoId key")
	}
	if _, ok := raw["lastCheckTimestamp"]; !ok {
		t.Error("state file missing lastCheckTimestamp key")
	}
}

func TestMarkProcessed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	tracker := NewTracker(path)

	if err := tracker.MarkProcessed("first"); err != nil {
		t.Fatalf("MarkProcessed() error = %v", err)
	}
	if err := tracker.MarkProcessed("second"); err != nil {
		t.Fatalf("MarkProcessed() error = %v", err)
	}

	s := tracker.Load()
	if s.LastVideoID == nil || *s.LastVideoID != "second" {
		t.Errorf("LastVideoID = %v, want second", s.LastVideoID)
	}
}

func TestMarkProcessedPreservesPriorTimestampField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	tracker := NewTracker(path)

	if err := tracker.MarkProcessed("abc"); err != nil {
		t.Fatal(err)
	}
	first := tracker.Load()
	if first.LastCheck == nil {
		t.Fatal("LastCheck nil after first save")
	}

	if err := tracker.MarkProcessed("def"); err != nil {
		t.Fatal(err)
	}
	second := tracker.Load()
	if second.LastCheck == nil {
		t.Fatal("LastCheck nil after second save")
	}
	// Each save re-stamps; the new stamp can never precede the old one.
	t1, _ := time.Parse(time.RFC3339, *first.LastCheck)
	t2, _ := time.Parse(time.RFC3339, *second.LastCheck)
	if t2.Before(t1) {
		t.Errorf("second stamp %v precedes first %v", t2, t1)
	}
}

func TestSaveAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	tracker := NewTracker(path)

	id := "keep"
	if err := tracker.Save(State{LastVideoID: &id}); err != nil {
		t.Fatal(err)
	}

	// No temp files should survive a successful save.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "state.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want [state.json]", names)
	}
}
