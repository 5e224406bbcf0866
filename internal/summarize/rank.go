package summarize

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// stopwords are excluded from the term-sentence matrix so scoring reflects
// content vocabulary rather than function words.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "this": true, "to": true, "was": true, "we": true,
	"were": true, "will": true, "with": true, "you": true, "your": true,
}

// latentStrategy ranks sentences with a one-factor latent semantic scoring:
// a term-sentence frequency matrix is built and its dominant right singular
// vector is approximated by power iteration; a sentence's score is its
// weight in that vector. The top sentences are emitted in document order.
type latentStrategy struct{}

func (latentStrategy) Name() string { return "latent" }

func (latentStrategy) Summarize(text string, sentenceCount int) (string, error) {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return "", errors.New("no sentences in input")
	}
	if sentenceCount > len(sentences) {
		sentenceCount = len(sentences)
	}

	scores, err := latentScores(sentences)
	if err != nil {
		return "", err
	}

	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	selected := indices[:sentenceCount]
	sort.Ints(selected)

	parts := make([]string, 0, len(selected))
	for _, i := range selected {
		parts = append(parts, sentences[i])
	}
	return strings.Join(parts, " "), nil
}

// latentScores approximates the dominant right singular vector of the
// term-sentence matrix via power iteration.
func latentScores(sentences []string) ([]float64, error) {
	vocab := make(map[string]int)
	counts := make([]map[int]float64, len(sentences))

	for i, sentence := range sentences {
		counts[i] = make(map[int]float64)
		for _, word := range tokenize(sentence) {
			if stopwords[word] {
				continue
			}
			id, ok := vocab[word]
			if !ok {
				id = len(vocab)
				vocab[word] = id
			}
			counts[i][id]++
		}
	}

	if len(vocab) == 0 {
		return nil, errors.New("no content terms")
	}

	v := make([]float64, len(sentences))
	for i := range v {
		v[i] = 1
	}

	for iter := 0; iter < 12; iter++ {
		u := make([]float64, len(vocab))
		for j, tf := range counts {
			for t, c := range tf {
				u[t] += c * v[j]
			}
		}

		next := make([]float64, len(sentences))
		for j, tf := range counts {
			for t, c := range tf {
				next[j] += c * u[t]
			}
		}

		norm := 0.0
		for _, x := range next {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			return nil, errors.New("degenerate term matrix")
		}
		for j := range next {
			next[j] /= norm
		}
		v = next
	}

	for j := range v {
		v[j] = math.Abs(v[j])
	}
	return v, nil
}

// tokenize lowercases and splits on non-alphanumeric runes.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
