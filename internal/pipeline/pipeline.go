// Package pipeline composes crawl, clean, summarize and token preview into
// the single operation the surrounding company-analysis service calls.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmylchreest/sitebrief/internal/logger"
	"github.com/jmylchreest/sitebrief/internal/summarize"
	"github.com/jmylchreest/sitebrief/internal/textutil"
	"github.com/jmylchreest/sitebrief/internal/tokens"
)

// Crawler yields the concatenated page text reachable from a start URL.
type Crawler interface {
	Crawl(ctx context.Context, startURL string) (string, error)
}

// Preview is the pipeline result. Summary is nil when the crawl produced no
// text at all; consumers treat the summary as optional enrichment.
type Preview struct {
	Summary    *string `json:"summary" yaml:"summary"`
	TokenCount int     `json:"token_count" yaml:"token_count"`
}

// Pipeline wires the components for one Run. The crawler and counter are
// constructed per invocation (or pool) by the caller; the pipeline holds no
// process-wide state.
type Pipeline struct {
	crawler    Crawler
	counter    tokens.Counter
	summarizer *summarize.Summarizer
	opts       Options
}

// New creates a Pipeline. The options are validated once here.
func New(crawler Crawler, counter tokens.Counter, opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		crawler:    crawler,
		counter:    counter,
		summarizer: summarize.New(opts.MaxChars),
		opts:       opts,
	}, nil
}

// Run crawls the start URL, reduces the text to a summary, and previews its
// token cost. An unreachable site yields {nil, 0} without touching the
// token-counting endpoint; a token-counting failure is the only error that
// reaches the caller besides context cancellation.
func (p *Pipeline) Run(ctx context.Context) (Preview, error) {
	raw, err := p.crawler.Crawl(ctx, p.opts.StartURL)
	if err != nil {
		return Preview{}, err
	}

	if strings.TrimSpace(raw) == "" {
		// Nothing to summarize; skip the paid count call entirely.
		logger.Info("crawl produced no text", "url", p.opts.StartURL)
		return Preview{Summary: nil, TokenCount: 0}, nil
	}

	cleaned := textutil.Clean(raw, p.opts.MaxChars)
	summary := p.summarizer.Summarize(cleaned, p.opts.SentenceCount)

	count, err := p.counter.Count(ctx, summary)
	if err != nil {
		return Preview{}, fmt.Errorf("token preview failed: %w", err)
	}

	logger.Debug("pipeline complete",
		"url", p.opts.StartURL,
		"raw_chars", len(raw),
		"summary_chars", len(summary),
		"tokens", count)

	return Preview{Summary: &summary, TokenCount: count}, nil
}
