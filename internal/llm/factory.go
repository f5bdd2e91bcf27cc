package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/cyberrange/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller → timeout → retry → logging → base. Logging is skipped when repo
// is nil and the timeout when cfg.Timeout is zero.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, logger *zap.Logger) (Provider, error) {
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
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if repo != nil {
		base = WithLogging(base, cfg.Provider, repo, logger)
	}
	return WithTimeout(WithRetry(base, cfg.Retry, logger), cfg.Timeout), nil
}
