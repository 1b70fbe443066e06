package discovery

import (
	"context"
	"strings"
	"testing"
)

type fakeExecutor struct {
	output  string
	err     error
	gotName string
	gotArgs []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.gotName = name
	f.gotArgs = args
	return f.output, f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func TestLatest(t *testing.T) {
	exec := &fakeExecutor{
		output: "abc123\tSunday Service Jan. 18, 2026\t20260118\n" +
			"def456\tSpecial Guest Speaker\tNA\n",
	}
	src := New("UCchannel", exec, testLogger()).(*implSource)

	videos, err := src.Latest(context.Background(), 20)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if exec.gotName != "yt-dlp" {
		t.Errorf("command = %q, want yt-dlp", exec.gotName)
	}
	joined := strings.Join(exec.gotArgs, " ")
	if !strings.Contains(joined, "--flat-playlist") {
		t.Errorf("args %q missing --flat-playlist", joined)
	}
	if !strings.Contains(joined, "--playlist-end 20") {
		t.Errorf("args %q missing --playlist-end 20", joined)
	}
	if !strings.Contains(joined, "UCchannel/videos") {
		t.Errorf("args %q missing channel URL", joined)
	}

	if len(videos) != 2 {
		t.Fatalf("Latest() returned %d videos, want 2", len(videos))
	}
	if videos[0].ID != "abc123" || videos[0].UploadDate != "2026-01-18" {
		t.Errorf("videos[0] = %+v, want id abc123 date 2026-01-18", videos[0])
	}
	if videos[1].ID != "def456" || videos[1].UploadDate != "" {
		t.Errorf("videos[1] = %+v, want id def456 with no date", videos[1])
	}
	if videos[0].URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("videos[0].URL = %q", videos[0].URL)
	}
}

func TestParseListing(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want int
	}{
		{"empty output", "", 0},
		{"blank lines ignored", "\n\n\n", 0},
		{"missing fields dropped", "abc123\tonly two fields\n", 0},
		{"na id dropped", "NA\tTitle\t20260118\n", 0},
		{"valid line", "abc123\tTitle\t20260118\n", 1},
		{"title with spaces kept whole", "abc123\tA Title With Spaces\tNA\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseListing(tt.out); len(got) != tt.want {
				t.Errorf("parseListing() returned %d videos, want %d", len(got), tt.want)
			}
		})
	}
}

func TestNormalizeUploadDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20260118", "2026-01-18"},
		{"2026-01-18", "2026-01-18"},
		{"NA", ""},
		{"", ""},
		{"notadate", ""},
		{"20261340", ""}, // impossible month
	}

	for _, tt := range tests {
		if got := normalizeUploadDate(tt.in); got != tt.want {
			t.Errorf("normalizeUploadDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
