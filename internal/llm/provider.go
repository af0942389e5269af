package llm

import (
	"fmt"

	"github.com/fitnova/central/internal/domain"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
	ProviderNone      = "none"
)

// NewClient creates a text generator for the provider name. The "none"
// provider returns a nil generator, which agents treat as offline.
func NewClient(provider, apiKey string) (domain.TextGenerator, error) {
	switch provider {
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(apiKey), nil

	case ProviderAnthropic:
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for Anthropic provider")
		}
		return NewAnthropicClient(apiKey), nil

	case ProviderMock:
		return NewMockClient(), nil

	case ProviderNone:
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid options: openai, anthropic, mock, none)", provider)
	}
}
