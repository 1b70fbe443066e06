package llm

import "context"

// Request holds the prompt pair and decoding knobs for one completion.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
	// JSONOnly asks the provider for a bare JSON object reply.
	JSONOnly bool
}

// Provider defines the interface for chat-completion backends.
type Provider interface {
	// Name returns the provider identifier for logging.
	Name() string
	// Complete returns the model's reply text for the request.
	Complete(ctx context.Context, req Request) (string, error)
}
