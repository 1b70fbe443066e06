package transcript

import (
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"under a minute", 42, "00:00:42"},
		{"minutes and seconds", 125, "00:02:05"},
		{"over an hour", 3725, "01:02:05"},
		{"fraction truncated", 30.9, "00:00:30"},
		{"negative clamped", -5, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		want    float64
		wantErr bool
	}{
		{"full form", "01:02:05", 3725, false},
		{"minutes form", "02:05", 125, false},
		{"bare seconds", "42", 42, false},
		{"fractional seconds", "00:00:30.5", 30.5, false},
		{"surrounding whitespace", " 00:01:00 ", 60, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
		{"garbage hours", "xx:00:00", 0, true},
		{"too many fields", "1:2:3:4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.ts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.ts, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.ts, got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, ts := range []string{"00:00:00", "00:00:30", "00:45:10", "01:30:00", "12:59:59"} {
		seconds, err := ParseTimestamp(ts)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) error = %v", ts, err)
		}
		if got := FormatTimestamp(seconds); got != ts {
			t.Errorf("round trip of %q produced %q", ts, got)
		}
	}
}
