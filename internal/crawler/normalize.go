// Package crawler implements a bounded, same-site crawl that accumulates
// page text for summarization.
package crawler

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a URL for visited-set membership: the fragment
// is dropped and the rest is re-serialized. Scheme, host, path and query are
// preserved. Malformed input is returned best-effort rather than rejected;
// unreachable URLs fail at fetch time instead.
func NormalizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		// Not parseable; the best we can do is drop an obvious fragment.
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			return raw[:i]
		}
		return raw
	}

	parsed.Fragment = ""
	return parsed.String()
}

// SameHost reports whether two URLs share a host component.
func SameHost(url1, url2 string) bool {
	parsed1, err := url.Parse(url1)
	if err != nil {
		return false
	}
	parsed2, err := url.Parse(url2)
	if err != nil {
		return false
	}
	return parsed1.Host != "" && parsed1.Host == parsed2.Host
}
