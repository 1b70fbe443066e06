package sermon

import "context"

// Locator classifies a timestamped transcript rendering into a sermon
// boundary.
type Locator interface {
	Locate(ctx context.Context, transcriptText string) (Boundary, error)
}

// Cleaner polishes raw sermon text into readable prose.
type Cleaner interface {
	Polish(ctx context.Context, text string) (string, error)
}
