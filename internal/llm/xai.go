package llm

import "fmt"

const defaultXAIBaseURL = "https://api.x.ai/v1"

// XAIProvider wraps OpenAIProvider with x.ai defaults. The x.ai API is
// OpenAI-compatible, so the underlying SDK is reused.
type XAIProvider struct {
	*OpenAIProvider
}

// NewXAIProvider creates a provider targeting the x.ai API.
func NewXAIProvider(cfg XAIConfig) (*XAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("xai API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultXAIBaseURL
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &XAIProvider{OpenAIProvider: inner}, nil
}
