// Package textutil normalizes crawled page text before summarization.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// Consent/legal/navigation vocabulary removed from extracted text. This
	// is a blunt substring filter: it can clip fragments of unrelated words
	// that contain these substrings, which is accepted for this use.
	boilerplateRE = regexp.MustCompile(`(?i)cookie|privacy|terms|contact|login|signup`)
)

// Clean collapses whitespace, strips boilerplate vocabulary, and bounds the
// result to maxChars. When truncation is needed, whole period-delimited
// sentences are accumulated greedily so the result ends on a sentence
// boundary; if not even one sentence fits, the text is hard-truncated at
// maxChars instead of returning nothing.
func Clean(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}

	text = whitespaceRE.ReplaceAllString(text, " ")
	text = boilerplateRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) <= maxChars {
		return text
	}

	var b strings.Builder
	parts := strings.Split(text, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			// The last part never had a terminator; dropping it beats
			// inventing a sentence boundary it did not have.
			break
		}
		sentence := strings.TrimSpace(part)
		if sentence == "" {
			continue
		}
		sentence += "."

		needed := len(sentence)
		if b.Len() > 0 {
			needed++ // joining space
		}
		if b.Len()+needed > maxChars {
			break
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentence)
	}

	if b.Len() == 0 {
		return Truncate(text, maxChars)
	}
	return b.String()
}

// Truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
