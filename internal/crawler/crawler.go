package crawler

import (
	"context"
	"strings"

	"github.com/jmylchreest/sitebrief/internal/logger"
	"github.com/jmylchreest/sitebrief/internal/scraper"
)

// Config bounds a crawl. Traversal stops when all discovered links are
// exhausted, the depth cap is reached on every branch, the accumulated text
// reaches MaxChars, or MaxPages pages have been fetched.
type Config struct {
	MaxDepth int // Max link depth (0 = start page only)
	MaxChars int // Character budget for accumulated page text
	MaxPages int // Max successfully fetched pages
}

// DefaultConfig returns the bounds used for company-site summarization.
func DefaultConfig() Config {
	return Config{
		MaxDepth: 1,
		MaxChars: 5000,
		MaxPages: 3,
	}
}

// Crawler walks same-host links depth-first from a start URL and accumulates
// extracted page text. One Crawler instance owns one fetcher session; a crawl
// is sequential and all crawl state is local to a single Crawl call.
type Crawler struct {
	fetcher scraper.Fetcher
	config  Config
}

// New creates a Crawler using the given fetcher.
func New(fetcher scraper.Fetcher, cfg Config) *Crawler {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultConfig().MaxChars
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultConfig().MaxPages
	}
	return &Crawler{
		fetcher: fetcher,
		config:  cfg,
	}
}

// Crawl traverses from startURL and returns the concatenated text of every
// page it fetched, in traversal order. A page that fails to fetch abandons
// that branch only; an unreachable start page yields an empty string, not an
// error. The only error returned is context cancellation.
func (c *Crawler) Crawl(ctx context.Context, startURL string) (string, error) {
	start := NormalizeURL(startURL)

	logger.Debug("crawl starting",
		"start_url", start,
		"max_depth", c.config.MaxDepth,
		"max_chars", c.config.MaxChars,
		"max_pages", c.config.MaxPages)

	list := NewWorklist()
	list.Add(start, 0)

	var pageTexts []string
	totalChars := 0
	pages := 0

	for {
		select {
		case <-ctx.Done():
			return strings.Join(pageTexts, "\n"), ctx.Err()
		default:
		}

		current, depth, ok := list.Pop()
		if !ok {
			break
		}
		if depth > c.config.MaxDepth {
			continue
		}
		if totalChars >= c.config.MaxChars {
			logger.Debug("crawl reached char budget", "chars", totalChars)
			break
		}
		if pages >= c.config.MaxPages {
			logger.Debug("crawl reached page cap", "pages", pages)
			break
		}

		// Zero-valued options defer to the fetcher's session config.
		content, err := c.fetcher.Fetch(ctx, current, scraper.FetchOptions{})
		if err != nil {
			// Page unavailable; abandon this branch and move on.
			logger.Debug("fetch failed", "url", current, "error", err)
			continue
		}

		text, links := scraper.Extract(content.HTML, current)
		pageTexts = append(pageTexts, text)
		totalChars += len(text)
		pages++

		logger.Info("page extracted",
			"url", current,
			"depth", depth,
			"chars", len(text),
			"links", len(links))

		// Children are pushed in reverse so the LIFO worklist visits them
		// in document order.
		for i := len(links) - 1; i >= 0; i-- {
			link := NormalizeURL(links[i])
			if !SameHost(start, link) {
				continue
			}
			if list.IsVisited(link) {
				continue
			}
			list.Add(link, depth+1)
		}
	}

	logger.Debug("crawl complete", "pages", pages, "chars", totalChars)
	return strings.Join(pageTexts, "\n"), nil
}
