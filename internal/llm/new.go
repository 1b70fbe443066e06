package llm

import (
	"fmt"

	"github.com/mwcockerill/sermon-scribe/internal/logger"
)

// Config selects and configures a completion provider.
type Config struct {
	Provider string // "openai" (default) or "gemini"
	Model    string
	APIKey   string   // OpenAI-compatible endpoints
	BaseURL  string   // optional OpenAI-compatible endpoint override
	APIKeys  []string // Gemini keys, rotated on quota errors
}

// New creates a Provider from the given configuration.
func New(cfg Config, log logger.Logger) (Provider, error) {
	switch cfg.Provider {
	case "", "openai":
		p := NewOpenAI(cfg.APIKey, cfg.Model)
		if cfg.BaseURL != "" {
			p.endpoint = cfg.BaseURL
		}
		return p, nil
	case "gemini":
		return NewGemini(cfg.APIKeys, cfg.Model, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
