package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config selects and configures the feedback model.
type Config struct {
	// Provider is one of "openrouter", "gemini", "anthropic", "openai", "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// MaxTokens and Temperature apply to every request built by callers
	// that do not set their own.
	MaxTokens   int
	Temperature float64

	// Timeout bounds one request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig also serves OpenAI-compatible APIs through BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	AppName string // sent as X-Title
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig routes feedback to Gemini 2.5 Flash through OpenRouter.
func DefaultConfig() Config {
	return Config{
		Provider:   "openrouter",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash", AppName: "CyberRange"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		MaxTokens:   1024,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// envBindings maps CYBERRANGE_* variables to config fields.
func (c *Config) envBindings() map[string]*string {
	return map[string]*string{
		"CYBERRANGE_LLM_PROVIDER":       &c.Provider,
		"CYBERRANGE_ANTHROPIC_API_KEY":  &c.Anthropic.APIKey,
		"CYBERRANGE_ANTHROPIC_MODEL":    &c.Anthropic.Model,
		"CYBERRANGE_OPENAI_API_KEY":     &c.OpenAI.APIKey,
		"CYBERRANGE_OPENAI_MODEL":       &c.OpenAI.Model,
		"CYBERRANGE_OPENAI_BASE_URL":    &c.OpenAI.BaseURL,
		"CYBERRANGE_GEMINI_API_KEY":     &c.Gemini.APIKey,
		"CYBERRANGE_GEMINI_MODEL":       &c.Gemini.Model,
		"CYBERRANGE_OPENROUTER_API_KEY": &c.OpenRouter.APIKey,
		"CYBERRANGE_OPENROUTER_MODEL":   &c.OpenRouter.Model,
	}
}

// ApplyEnv overrides fields from CYBERRANGE_* environment variables.
func (c *Config) ApplyEnv() {
	for name, field := range c.envBindings() {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	if v, err := strconv.Atoi(os.Getenv("CYBERRANGE_LLM_MAX_TOKENS")); err == nil && v > 0 {
		c.MaxTokens = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("CYBERRANGE_LLM_TEMPERATURE"), 64); err == nil {
		c.Temperature = v
	}
	if v, err := time.ParseDuration(os.Getenv("CYBERRANGE_LLM_TIMEOUT")); err == nil && v > 0 {
		c.Timeout = v
	}
}

// ConfigFromEnv returns DefaultConfig with environment overrides applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// DiscoverConfig looks for a provider's conventional API key variable and
// returns a config for the first one found, preferring OpenRouter and
// Gemini since the default model is a Gemini model.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	candidates := []struct {
		env      string
		provider string
		key      *string
	}{
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
	}
	for _, p := range candidates {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// HasKey reports whether the selected provider has an API key.
func (c Config) HasKey() bool {
	return c.Provider == "mock" || c.apiKey() != ""
}

func (c Config) apiKey() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "gemini":
		return c.Gemini.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case "mock":
		return nil
	case "anthropic", "openai", "gemini", "openrouter":
		if c.apiKey() == "" {
			return fmt.Errorf("an API key is required for the %s provider (CYBERRANGE_%s_API_KEY)", c.Provider, strings.ToUpper(c.Provider))
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
