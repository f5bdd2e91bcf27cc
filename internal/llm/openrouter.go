package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider reaches any OpenRouter model through its
// OpenAI-compatible endpoint.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// Model IDs are passed through unchanged, e.g. "google/gemini-2.5-flash".
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	if config.BaseURL == "" {
		config.BaseURL = defaultOpenRouterBaseURL
	}
	if cfg.AppName != "" {
		config.HTTPClient = &titledClient{inner: http.DefaultClient, title: cfg.AppName}
	}

	return &OpenRouterProvider{OpenAIProvider: newOpenAIProvider(config, cfg.Model, false)}, nil
}

// titledClient adds OpenRouter's app attribution header to every request.
type titledClient struct {
	inner *http.Client
	title string
}

func (c *titledClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Title", c.title)
	return c.inner.Do(req)
}
