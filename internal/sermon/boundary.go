// Package sermon locates and extracts the sermon portion of a full-service
// transcript.
package sermon

// Confidence levels reported by the boundary classification.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Boundary is the classifier's verdict on where the sermon sits inside a
// full-service transcript. Start and End are timestamp strings; a nil
// pointer means the classifier declined to name that edge.
type Boundary struct {
	Start      *string `json:"sermon_start"`
	End        *string `json:"sermon_end"`
	Confidence string  `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Identified reports whether both edges are present. A one-sided reply is
// treated the same as no sermon at all.
func (b Boundary) Identified() bool {
	return b.Start != nil && *b.Start != "" && b.End != nil && *b.End != ""
}
