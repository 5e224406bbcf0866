package pipeline

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Options configures one pipeline invocation.
type Options struct {
	StartURL      string `validate:"required,url"`
	MaxDepth      int    `validate:"min=0"`
	MaxChars      int    `validate:"min=1"`
	MaxPages      int    `validate:"min=1"`
	SentenceCount int    `validate:"min=1"`
}

// DefaultOptions returns the fixed defaults: depth 1, a 5000 character
// budget, 3 pages, 5 summary sentences.
func DefaultOptions(startURL string) Options {
	return Options{
		StartURL:      startURL,
		MaxDepth:      1,
		MaxChars:      5000,
		MaxPages:      3,
		SentenceCount: 5,
	}
}

var validate = validator.New()

// Validate checks the options.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid pipeline options: %w", err)
	}
	return nil
}
