package llm

import (
	"context"
	"fmt"

	"github.com/lazypower/nexus/internal/config"
)

// Client is the interface for LLM providers.
type Client interface {
	Complete(ctx context.Context, prompt string) (*Response, error)
}

// Response holds the result of an LLM completion.
type Response struct {
	Content    string
	Provider   string
	TokensUsed int
}

// NewClient creates an LLM client based on the config provider setting.
func NewClient(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GEMINI_API_KEY or config")
		}
		model := cfg.Model
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return NewGemini(cfg.GeminiKey, model), nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("anthropic provider requires ANTHROPIC_API_KEY or config")
		}
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return NewAnthropic(cfg.AnthropicKey, model), nil
	case "mock":
		return &MockClient{Response: &Response{Content: "{}", Provider: "mock"}}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
