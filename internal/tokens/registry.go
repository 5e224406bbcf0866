package tokens

import (
	"fmt"
	"os"
)

// CounterFactory creates counters.
type CounterFactory func(cfg Config) (Counter, error)

// DefaultModels maps provider names to their default models.
var DefaultModels = map[string]string{
	"anthropic": "claude-opus-4-5-20251101",
	"openai":    "gpt-4o",
}

var registry = map[string]CounterFactory{
	"anthropic": func(cfg Config) (Counter, error) {
		return NewAnthropicCounter(cfg)
	},
	"openai": func(cfg Config) (Counter, error) {
		return NewOpenAICounter(cfg)
	},
}

// NewCounter creates a counter by provider name.
func NewCounter(name string, cfg Config) (Counter, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: anthropic, openai)", name)
	}
	return factory(cfg)
}

// RegisterCounter adds a custom counter factory.
func RegisterCounter(name string, factory CounterFactory) {
	registry[name] = factory
}

// DetectProvider auto-detects the provider from available API keys.
// Returns the provider name and API key. OpenAI needs no key because its
// counting is local.
func DetectProvider() (provider string, apiKey string) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return "anthropic", key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return "openai", key
	}
	return "openai", ""
}

// GetDefaultModel returns the default model for a provider.
func GetDefaultModel(provider string) string {
	if model, ok := DefaultModels[provider]; ok {
		return model
	}
	return ""
}
