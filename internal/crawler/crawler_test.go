package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/jmylchreest/sitebrief/internal/scraper"
)

// fakeFetcher serves an in-memory site keyed by normalized URL and records
// every fetch attempt in order.
type fakeFetcher struct {
	pages   map[string]string
	fetched []string
}

func (f *fakeFetcher) Fetch(_ context.Context, target string, _ scraper.FetchOptions) (scraper.PageContent, error) {
	f.fetched = append(f.fetched, target)
	html, ok := f.pages[target]
	if !ok {
		return scraper.PageContent{URL: target}, errors.New("page unavailable")
	}
	return scraper.PageContent{URL: target, HTML: html}, nil
}

func (f *fakeFetcher) Close() error { return nil }
func (f *fakeFetcher) Type() string { return "fake" }

// page builds a minimal HTML page with the given body text and links.
func page(text string, hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><p>")
	b.WriteString(text)
	b.WriteString("</p>")
	for _, href := range hrefs {
		fmt.Fprintf(&b, `<a href=%q>link</a>`, href)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func TestCrawl_UnreachableStart(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{}}
	c := New(f, DefaultConfig())

	got, err := c.Crawl(context.Background(), "https://site.test/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}
	if got != "" {
		t.Errorf("expected empty string for unreachable start, got %q", got)
	}
	if len(f.fetched) != 1 {
		t.Errorf("expected exactly 1 fetch attempt, got %d", len(f.fetched))
	}
}

func TestCrawl_SinglePage(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/": page("Welcome. We build developer tools."),
	}}
	c := New(f, DefaultConfig())

	got, err := c.Crawl(context.Background(), "https://site.test/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}
	if !strings.Contains(got, "We build developer tools") {
		t.Errorf("expected page text in result, got %q", got)
	}
}

func TestCrawl_DomainContainment(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/":      page("Home.", "/about", "https://other.test/external"),
		"https://site.test/about": page("About us."),
	}}
	c := New(f, DefaultConfig())

	if _, err := c.Crawl(context.Background(), "https://site.test/"); err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	for _, fetched := range f.fetched {
		u, err := url.Parse(fetched)
		if err != nil || u.Host != "site.test" {
			t.Errorf("fetched cross-domain URL %q", fetched)
		}
	}
}

func TestCrawl_NoDuplicateVisits(t *testing.T) {
	// Pages link to each other and to themselves.
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/":  page("Home.", "/a", "/", "/a#section"),
		"https://site.test/a": page("Page A.", "/", "/a"),
	}}
	c := New(f, DefaultConfig())

	if _, err := c.Crawl(context.Background(), "https://site.test/"); err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, fetched := range f.fetched {
		if seen[fetched] {
			t.Errorf("URL fetched twice: %q", fetched)
		}
		seen[fetched] = true
	}
}

func TestCrawl_PageCap(t *testing.T) {
	pages := map[string]string{}
	links := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		path := fmt.Sprintf("/p%d", i)
		links = append(links, path)
		pages["https://site.test"+path] = page(fmt.Sprintf("Page %d.", i))
	}
	pages["https://site.test/"] = page("Home.", links...)

	f := &fakeFetcher{pages: pages}
	c := New(f, Config{MaxDepth: 1, MaxChars: 100000, MaxPages: 3})

	if _, err := c.Crawl(context.Background(), "https://site.test/"); err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	// Start page plus 2 children, regardless of how many links exist.
	if len(f.fetched) != 3 {
		t.Errorf("expected 3 fetches with MaxPages=3, got %d: %v", len(f.fetched), f.fetched)
	}
}

func TestCrawl_DepthCap(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/":  page("Home.", "/a"),
		"https://site.test/a": page("Page A.", "/b"),
		"https://site.test/b": page("Page B."),
	}}
	c := New(f, Config{MaxDepth: 0, MaxChars: 100000, MaxPages: 10})

	if _, err := c.Crawl(context.Background(), "https://site.test/"); err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	if len(f.fetched) != 1 {
		t.Errorf("expected only start page with MaxDepth=0, got %d fetches", len(f.fetched))
	}
}

func TestCrawl_CharBudget(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/":  page(strings.Repeat("Lots of text. ", 20), "/a"),
		"https://site.test/a": page("Never reached."),
	}}
	c := New(f, Config{MaxDepth: 1, MaxChars: 50, MaxPages: 10})

	got, err := c.Crawl(context.Background(), "https://site.test/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	if len(f.fetched) != 1 {
		t.Errorf("expected traversal to halt after exceeding char budget, got %d fetches", len(f.fetched))
	}
	if strings.Contains(got, "Never reached") {
		t.Error("page beyond the char budget should not appear in the result")
	}
}

func TestCrawl_DepthFirstDocumentOrder(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/":   page("Home.", "/a", "/b"),
		"https://site.test/a":  page("Page A.", "/a1"),
		"https://site.test/a1": page("Page A1."),
		"https://site.test/b":  page("Page B."),
	}}
	c := New(f, Config{MaxDepth: 2, MaxChars: 100000, MaxPages: 10})

	if _, err := c.Crawl(context.Background(), "https://site.test/"); err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	want := []string{
		"https://site.test/",
		"https://site.test/a",
		"https://site.test/a1",
		"https://site.test/b",
	}
	if len(f.fetched) != len(want) {
		t.Fatalf("expected %d fetches, got %d: %v", len(want), len(f.fetched), f.fetched)
	}
	for i, u := range want {
		if f.fetched[i] != u {
			t.Errorf("fetch %d = %q, want %q (depth-first document order)", i, f.fetched[i], u)
		}
	}
}

func TestCrawl_FetchFailureAbandonsBranchOnly(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/":   page("Home.", "/broken", "/ok"),
		"https://site.test/ok": page("Still here."),
	}}
	c := New(f, Config{MaxDepth: 1, MaxChars: 100000, MaxPages: 10})

	got, err := c.Crawl(context.Background(), "https://site.test/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}
	if !strings.Contains(got, "Still here") {
		t.Errorf("siblings of a failed branch should still be crawled, got %q", got)
	}
}

func TestCrawl_CancelledContext(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://site.test/": page("Home."),
	}}
	c := New(f, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Crawl(ctx, "https://site.test/"); err == nil {
		t.Error("expected context cancellation error")
	}
}
