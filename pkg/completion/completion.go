package completion

import (
	"context"
	"fmt"
)

// Message is one chat message sent to the completion API.
type Message struct {
	Role    string
	Content string
}

// Request carries the parameters for one completion call.
type Request struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Provider is an interface for hosted completion APIs. Implementations
// return the generated text or a wrapped transport/payload error; callers
// treat any error as an external service failure.
type Provider interface {
	// Complete makes a completion API call
	Complete(ctx context.Context, request Request) (string, error)

	// Name returns the provider name
	Name() string
}

// Config selects and configures a provider.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string
	BaseURL  string // OpenAI-compatible endpoints only (e.g. Groq)
}

// NewProvider creates a provider from config.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL), nil
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
