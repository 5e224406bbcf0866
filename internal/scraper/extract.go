package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/jmylchreest/sitebrief/internal/logger"
)

// noiseSelector matches elements that are removed before text extraction;
// chrome like navigation and footers dominates the non-content noise on
// company sites.
const noiseSelector = "script, style, noscript, iframe, svg, nav, header, footer"

// Extract converts rendered HTML into a flat text string and the list of
// hyperlink targets found anywhere in the document, one entry per distinct
// resolved target, resolved against pageURL. Noise elements are stripped
// before any text extraction; the main content region is preferred when
// readability can identify one, otherwise the whole body is used. Malformed
// HTML yields whatever can be parsed; Extract never fails.
func Extract(htmlContent, pageURL string) (string, []string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		logger.Debug("extract parse failed", "url", pageURL, "error", err)
		return "", nil
	}

	base, _ := url.Parse(pageURL)

	// Links come from the original document, not the main-content region:
	// navigation links are exactly what the crawler needs to follow. The
	// parser can reconstruct an anchor across element boundaries, so targets
	// are deduplicated here.
	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" || strings.HasPrefix(href, "#") {
			return
		}
		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		if !linkURL.IsAbs() && base != nil {
			linkURL = base.ResolveReference(linkURL)
		}
		resolved := linkURL.String()
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	// Noise comes out before any text path runs, so chrome never leaks into
	// the readability pass either.
	doc.Find(noiseSelector).Remove()

	text := mainContent(doc, base)
	if text == "" {
		text = visibleText(doc.Find("body").Nodes...)
		if text == "" {
			// Fragment without a body element; fall back to the whole tree.
			text = visibleText(doc.Selection.Nodes...)
		}
	}

	return text, links
}

// mainContent runs a readability pass over the stripped document and returns
// its text, or "" when no main content region is identifiable.
func mainContent(doc *goquery.Document, base *url.URL) string {
	stripped, err := doc.Html()
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(stripped), base)
	if err != nil || article.Node == nil {
		return ""
	}
	return visibleText(article.Node)
}

// visibleText joins the trimmed text nodes of the given trees in document
// order, one space between nodes.
func visibleText(nodes ...*html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
