// Package summarize reduces cleaned page text to a short extractive
// summary. Strategies are tried in a fixed order until one produces a
// non-empty result, so summarization never fails outright.
package summarize

import (
	"errors"
	"strings"

	"github.com/jmylchreest/sitebrief/internal/logger"
	"github.com/jmylchreest/sitebrief/internal/textutil"
)

// Strategy is one way of producing a summary. An error or empty output
// moves the chain on to the next strategy.
type Strategy interface {
	Name() string
	Summarize(text string, sentenceCount int) (string, error)
}

// leadStrategy returns the first sentenceCount sentences of the text.
type leadStrategy struct{}

func (leadStrategy) Name() string { return "lead" }

func (leadStrategy) Summarize(text string, sentenceCount int) (string, error) {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return "", errors.New("no sentences in input")
	}
	if sentenceCount > len(sentences) {
		sentenceCount = len(sentences)
	}
	return strings.Join(sentences[:sentenceCount], " "), nil
}

// prefixStrategy returns a raw character prefix with no sentence awareness.
// It is the last resort and cannot fail on non-empty input.
type prefixStrategy struct {
	limit int
}

func (prefixStrategy) Name() string { return "prefix" }

func (p prefixStrategy) Summarize(text string, _ int) (string, error) {
	return textutil.Truncate(text, p.limit), nil
}

// Summarizer runs the strategy chain. maxChars bounds the final-fallback
// prefix; it should match the cleaner's character cap.
type Summarizer struct {
	strategies []Strategy
}

// New creates a Summarizer with the default chain: latent semantic sentence
// ranking, then lead sentences, then a raw prefix of at most maxChars.
func New(maxChars int) *Summarizer {
	if maxChars <= 0 {
		maxChars = 5000
	}
	return &Summarizer{
		strategies: []Strategy{
			latentStrategy{},
			leadStrategy{},
			prefixStrategy{limit: maxChars},
		},
	}
}

// NewWithStrategies creates a Summarizer with a custom chain.
func NewWithStrategies(strategies ...Strategy) *Summarizer {
	return &Summarizer{strategies: strategies}
}

// Summarize returns at most sentenceCount extracted sentences. It always
// returns some string; empty only when the input itself is empty and every
// strategy came up empty. The result is never longer than the input.
func (s *Summarizer) Summarize(text string, sentenceCount int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	for _, strategy := range s.strategies {
		out, err := strategy.Summarize(text, sentenceCount)
		if err != nil {
			logger.Debug("summarize strategy failed",
				"strategy", strategy.Name(),
				"error", err)
			continue
		}
		if strings.TrimSpace(out) != "" {
			logger.Debug("summarize strategy succeeded",
				"strategy", strategy.Name(),
				"chars", len(out))
			return out
		}
	}
	return ""
}
