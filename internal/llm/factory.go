package llm

import (
	"context"
	"fmt"

	"github.com/adasgupta/skillbridge/internal/store"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware chain: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
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

	logged := WithLogging(base, repo)
	return WithRetry(logged, cfg.Retry), nil
}
