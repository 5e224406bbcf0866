// Package tokens previews the token cost of text against a generative-model
// provider. Counting errors are the one failure in the pipeline that is
// surfaced to the caller: a cost preview must not silently lie.
package tokens

import "context"

// Counter reports the token cost of a piece of text for a model.
type Counter interface {
	// Count returns the number of tokens text would consume as model input.
	Count(ctx context.Context, text string) (int, error)

	// Name returns the provider identifier.
	Name() string
}

// Config holds common configuration for counters.
type Config struct {
	APIKey string
	Model  string
}
