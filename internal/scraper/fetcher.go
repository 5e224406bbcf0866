// Package scraper handles web page fetching and content extraction.
package scraper

import (
	"context"
	"time"
)

// PageContent represents fetched page data. Text and link extraction happen
// separately (see Extract); fetchers only retrieve the rendered document.
type PageContent struct {
	URL        string
	HTML       string
	Title      string
	StatusCode int
	FetchedAt  time.Time
}

// FetchOptions controls fetching behavior for a single request.
type FetchOptions struct {
	UserAgent string
	Timeout   time.Duration
	Settle    time.Duration // Additional wait after load for client-side rendering
}

// DefaultFetchOptions returns sensible defaults.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		UserAgent: "sitebrief/1.0 (https://github.com/jmylchreest/sitebrief)",
		Timeout:   30 * time.Second,
	}
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts FetchOptions) (PageContent, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static", "dynamic" or "auto".
	Type() string
}

// FetcherConfig holds common fetcher configuration. It is fixed for the
// lifetime of a fetcher; one fetcher instance serves one crawl.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
	Settle    time.Duration
}

// DefaultFetcherConfig returns sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: "sitebrief/1.0 (https://github.com/jmylchreest/sitebrief)",
		Timeout:   30 * time.Second,
		Settle:    2 * time.Second,
	}
}
