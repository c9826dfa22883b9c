package ai

import "context"

// Provider names.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// Provider is a text-generation backend used for machine translation.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends the prompt and returns the model's text output.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)

	// Test sends a trivial message to verify connectivity and credentials.
	Test(ctx context.Context) (string, error)
}

// Config holds provider construction parameters.
type Config struct {
	Provider string // "openai", "anthropic", or "compatible"
	APIKey   string
	BaseURL  string // required for "compatible"
	Model    string
}

// NewProvider creates a provider from config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, ProviderOpenAI), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, ProviderCompatible), nil
	default:
		return nil, ErrInvalidProvider
	}
}
