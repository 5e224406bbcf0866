package tokens

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encoderCache   = make(map[string]*tiktoken.Tiktoken)
	encoderCacheMu sync.RWMutex
)

// OpenAICounter counts tokens with tiktoken. OpenAI exposes no server-side
// count endpoint, so counting is local against the model's encoding, with
// cl100k_base as the fallback for unknown models.
type OpenAICounter struct {
	model string
}

// NewOpenAICounter creates a new OpenAI token counter.
func NewOpenAICounter(cfg Config) (*OpenAICounter, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModels["openai"]
	}
	return &OpenAICounter{model: model}, nil
}

// Count encodes text with the model's tokenizer and returns the token count.
func (c *OpenAICounter) Count(_ context.Context, text string) (int, error) {
	enc, err := encoderFor(c.model)
	if err != nil {
		return 0, fmt.Errorf("openai token count: %w", err)
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// Name returns the provider identifier.
func (c *OpenAICounter) Name() string {
	return "openai"
}

// encoderFor returns a cached tiktoken encoder for the given model.
func encoderFor(model string) (*tiktoken.Tiktoken, error) {
	encoderCacheMu.RLock()
	if enc, ok := encoderCache[model]; ok {
		encoderCacheMu.RUnlock()
		return enc, nil
	}
	encoderCacheMu.RUnlock()

	encoderCacheMu.Lock()
	defer encoderCacheMu.Unlock()

	if enc, ok := encoderCache[model]; ok {
		return enc, nil
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}

	encoderCache[model] = enc
	return enc, nil
}
