package scraper

import (
	"strings"
	"testing"
)

func TestExtract_RemovesNoiseElements(t *testing.T) {
	html := `<html><body>
		<nav>Site Navigation</nav>
		<header>Header Banner</header>
		<script>var x = "scriptcontent";</script>
		<style>.hidden { display: none; }</style>
		<p>Actual page content about products.</p>
		<footer>Footer Legal</footer>
	</body></html>`

	text, _ := Extract(html, "https://example.com/")

	if !strings.Contains(text, "Actual page content") {
		t.Errorf("expected main content in text, got %q", text)
	}
	for _, noise := range []string{"scriptcontent", "display: none", "Site Navigation", "Header Banner", "Footer Legal"} {
		if strings.Contains(text, noise) {
			t.Errorf("noise %q should be removed from text %q", noise, text)
		}
	}
}

func TestExtract_NoiseStrippedBeforeMainContent(t *testing.T) {
	// Enough body text for a main-content region to be identifiable; the
	// chrome around it must still never reach the output.
	var article strings.Builder
	for i := 0; i < 30; i++ {
		article.WriteString("<p>Paragraph about the product line and the problems it solves for engineering teams every day.</p>")
	}
	html := `<html><body>
		<nav>Products Pricing Docs Blog</nav>
		<header>Top Banner</header>
		<div id="content">` + article.String() + `</div>
		<footer>All rights reserved</footer>
	</body></html>`

	text, _ := Extract(html, "https://example.com/")

	if !strings.Contains(text, "problems it solves") {
		t.Errorf("expected article text in output, got %q", text)
	}
	for _, noise := range []string{"Pricing Docs", "Top Banner", "rights reserved"} {
		if strings.Contains(text, noise) {
			t.Errorf("noise %q leaked into extracted text", noise)
		}
	}
}

func TestExtract_LinksFromWholeDocument(t *testing.T) {
	// Links live in navigation, which is stripped from the text but must
	// still feed the crawl.
	html := `<html><body>
		<nav><a href="/about">About</a><a href="/careers">Careers</a></nav>
		<p>Content. <a href="https://other.test/page">External</a></p>
	</body></html>`

	_, links := Extract(html, "https://example.com/")

	want := []string{
		"https://example.com/about",
		"https://example.com/careers",
		"https://other.test/page",
	}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d: %v", len(want), len(links), links)
	}
	for i, w := range want {
		if links[i] != w {
			t.Errorf("link %d = %q, want %q", i, links[i], w)
		}
	}
}

func TestExtract_SkipsFragmentOnlyLinks(t *testing.T) {
	html := `<html><body><a href="#top">Top</a><a href="/real">Real</a></body></html>`

	_, links := Extract(html, "https://example.com/")

	if len(links) != 1 || links[0] != "https://example.com/real" {
		t.Errorf("expected only the real link, got %v", links)
	}
}

func TestExtract_ResolvesRelativeLinks(t *testing.T) {
	html := `<html><body><a href="sibling">Sibling</a><a href="../up">Up</a></body></html>`

	_, links := Extract(html, "https://example.com/a/b/page")

	want := []string{
		"https://example.com/a/b/sibling",
		"https://example.com/a/up",
	}
	for i, w := range want {
		if i >= len(links) || links[i] != w {
			t.Errorf("expected link %q at %d, got %v", w, i, links)
		}
	}
}

func TestExtract_DuplicateHrefsCollapsed(t *testing.T) {
	html := `<html><body>
		<nav><a href="/pricing">Pricing</a></nav>
		<p>See our <a href="/pricing">pricing page</a>.</p>
	</body></html>`

	_, links := Extract(html, "https://example.com/")

	if len(links) != 1 || links[0] != "https://example.com/pricing" {
		t.Errorf("expected one deduplicated link, got %v", links)
	}
}

func TestExtract_MalformedHTML(t *testing.T) {
	// Never fails, yields whatever can be parsed.
	text, links := Extract("<p>unclosed <a href='/x'>link <div>weird nesting", "https://example.com/")

	if !strings.Contains(text, "unclosed") {
		t.Errorf("expected partial text output, got %q", text)
	}
	if len(links) != 1 || links[0] != "https://example.com/x" {
		t.Errorf("expected the one parseable link, got %v", links)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	text, links := Extract("", "https://example.com/")
	if text != "" {
		t.Errorf("expected empty text for empty input, got %q", text)
	}
	if len(links) != 0 {
		t.Errorf("expected no links for empty input, got %v", links)
	}
}

func TestExtract_TextNodesJoinedWithSpaces(t *testing.T) {
	// Adjacent elements without whitespace between them must not run
	// words together.
	html := `<html><body><span>Home</span><span>About</span></body></html>`

	text, _ := Extract(html, "https://example.com/")

	if strings.Contains(text, "HomeAbout") {
		t.Errorf("text nodes ran together: %q", text)
	}
	if !strings.Contains(text, "Home") || !strings.Contains(text, "About") {
		t.Errorf("expected both text nodes in output, got %q", text)
	}
}
