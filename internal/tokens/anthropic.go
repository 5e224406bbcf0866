package tokens

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicCounter counts tokens via the Anthropic count-tokens endpoint,
// authenticated with caller-supplied credentials. This is a real API call,
// not a local estimate.
type AnthropicCounter struct {
	client anthropic.Client
	model  string
}

// NewAnthropicCounter creates a new Anthropic token counter.
func NewAnthropicCounter(cfg Config) (*AnthropicCounter, error) {
	opts := []option.RequestOption{}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	client := anthropic.NewClient(opts...)

	model := cfg.Model
	if model == "" {
		model = DefaultModels["anthropic"]
	}

	return &AnthropicCounter{
		client: client,
		model:  model,
	}, nil
}

// Count sends text to the count-tokens endpoint as a single user message.
func (c *AnthropicCounter) Count(ctx context.Context, text string) (int, error) {
	resp, err := c.client.Messages.CountTokens(ctx, anthropic.MessageCountTokensParams{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("anthropic token count: %w", err)
	}
	return int(resp.InputTokens), nil
}

// Name returns the provider identifier.
func (c *AnthropicCounter) Name() string {
	return "anthropic"
}
