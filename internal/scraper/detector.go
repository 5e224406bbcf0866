package scraper

import (
	"context"
	"fmt"
	"strings"
)

// FetchMode determines how pages are fetched.
type FetchMode string

const (
	FetchModeAuto    FetchMode = "auto"
	FetchModeStatic  FetchMode = "static"
	FetchModeDynamic FetchMode = "dynamic"
)

// NewFetcher creates an appropriate fetcher based on mode.
func NewFetcher(mode FetchMode, cfg FetcherConfig) (Fetcher, error) {
	switch mode {
	case FetchModeStatic:
		return NewStaticFetcher(cfg), nil
	case FetchModeDynamic:
		return NewDynamicFetcher(cfg)
	case FetchModeAuto:
		return NewAutoFetcher(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s (available: auto, static, dynamic)", mode)
	}
}

// AutoFetcher tries a static fetch first and falls back to the headless
// browser when the page appears to require JavaScript rendering.
type AutoFetcher struct {
	static  *StaticFetcher
	dynamic *DynamicFetcher
}

// NewAutoFetcher creates a fetcher that auto-detects JS requirements.
func NewAutoFetcher(cfg FetcherConfig) (*AutoFetcher, error) {
	dynamic, err := NewDynamicFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic fetcher: %w", err)
	}

	return &AutoFetcher{
		static:  NewStaticFetcher(cfg),
		dynamic: dynamic,
	}, nil
}

// Fetch tries static first, then falls back to dynamic if needed.
func (f *AutoFetcher) Fetch(ctx context.Context, url string, opts FetchOptions) (PageContent, error) {
	content, err := f.static.Fetch(ctx, url, opts)
	if err != nil {
		return f.dynamic.Fetch(ctx, url, opts)
	}

	if needsJavaScript(content.HTML, url) {
		return f.dynamic.Fetch(ctx, url, opts)
	}

	return content, nil
}

// needsJavaScript checks if a page appears to require JS rendering.
func needsJavaScript(htmlContent, pageURL string) bool {
	lower := strings.ToLower(htmlContent)

	// SPA framework markers
	spaMarkers := []string{
		"<div id=\"root\"></div>",   // React
		"<div id=\"app\"></div>",    // Vue
		"<app-root></app-root>",     // Angular
		"<div id=\"__next\"></div>", // Next.js
		"<div id=\"__nuxt\"></div>", // Nuxt.js
		"<div data-reactroot",       // React
		"ng-app",                    // Angular
		"v-cloak",                   // Vue
	}
	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	// Very little visible text with a loading indicator suggests an SPA
	// shell waiting for hydration.
	text, _ := Extract(htmlContent, pageURL)
	if len(strings.TrimSpace(text)) < 100 {
		jsIndicators := []string{
			"loading",
			"please wait",
			"javascript required",
			"enable javascript",
		}
		lowerText := strings.ToLower(text)
		for _, indicator := range jsIndicators {
			if strings.Contains(lowerText, indicator) {
				return true
			}
		}
	}

	if strings.Contains(lower, "<noscript>") {
		noscriptContent := extractBetween(lower, "<noscript>", "</noscript>")
		warningIndicators := []string{
			"javascript",
			"enable",
			"required",
			"browser",
		}
		for _, indicator := range warningIndicators {
			if strings.Contains(noscriptContent, indicator) {
				return true
			}
		}
	}

	return false
}

// extractBetween extracts content between two markers.
func extractBetween(s, start, end string) string {
	startIdx := strings.Index(s, start)
	if startIdx == -1 {
		return ""
	}
	startIdx += len(start)

	endIdx := strings.Index(s[startIdx:], end)
	if endIdx == -1 {
		return ""
	}

	return s[startIdx : startIdx+endIdx]
}

// Close releases all fetcher resources.
func (f *AutoFetcher) Close() error {
	if f.dynamic != nil {
		return f.dynamic.Close()
	}
	return nil
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return "auto"
}
