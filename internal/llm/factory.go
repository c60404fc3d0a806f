package llm

import (
	"context"
	"fmt"

	"github.com/studytrail/studytrail/internal/store"
)

// NewProvider builds a Provider from configuration, wrapped with retry and
// event-logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from environment configuration. It
// returns an error when no provider key is configured.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	return NewProvider(ctx, ConfigFromEnv(), events)
}
