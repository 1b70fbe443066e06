package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mwcockerill/sermon-scribe/internal/logger"
)

// GeminiProvider talks to the Gemini API, rotating through API keys when one
// hits its quota.
type GeminiProvider struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Gemini provider that rotates through the supplied API
// keys. If model is empty, defaults to "gemini-2.5-flash".
func NewGemini(apiKeys []string, model string, log logger.Logger) *GeminiProvider {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiProvider{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// Name returns the provider identifier for logging.
func (g *GeminiProvider) Name() string {
	return "gemini/" + g.model
}

// Complete sends the request and returns the reply text.
// Rotates API keys on 429 / quota errors.
func (g *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("gemini provider not configured")
	}

	// Gemini takes a single text part, so the system prompt is folded into
	// the message. JSON-only replies are enforced by the prompt and the
	// fence-stripping decoder on the caller's side.
	prompt := req.UserPrompt
	if req.SystemPrompt != "" {
		prompt = req.SystemPrompt + "\n\n" + req.UserPrompt
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *GeminiProvider) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
