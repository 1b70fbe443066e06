package sermon

import "testing"

func strptr(s string) *string { return &s }

func TestBoundaryIdentified(t *testing.T) {
	tests := []struct {
		name string
		b    Boundary
		want bool
	}{
		{
			name: "both edges present",
			b:    Boundary{Start: strptr("00:12:00"), End: strptr("00:48:30"), Confidence: ConfidenceHigh},
			want: true,
		},
		{
			name: "both absent",
			b:    Boundary{Confidence: ConfidenceLow, Reasoning: "no teaching section"},
			want: false,
		},
		{
			name: "start missing",
			b:    Boundary{End: strptr("00:40:00"), Confidence: ConfidenceMedium},
			want: false,
		},
		{
			name: "end missing",
			b:    Boundary{Start: strptr("00:12:00")},
			want: false,
		},
		{
			name: "empty strings count as absent",
			b:    Boundary{Start: strptr(""), End: strptr("00:40:00")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Identified(); got != tt.want {
				t.Errorf("Identified() = %v, want %v", got, tt.want)
			}
		})
	}
}
