package summarize

import (
	"errors"
	"strings"
	"testing"
)

func TestLatentStrategy_SelectsDominantTopic(t *testing.T) {
	text := "Apples taste great. Apples grow on tall trees. Bananas belong elsewhere."

	out, err := latentStrategy{}.Summarize(text, 2)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// The two apple sentences share vocabulary and dominate the first
	// singular vector.
	if !strings.Contains(out, "Apples taste great.") || !strings.Contains(out, "Apples grow on tall trees.") {
		t.Errorf("expected the dominant-topic sentences, got %q", out)
	}
	if strings.Contains(out, "Bananas") {
		t.Errorf("off-topic sentence should not be selected, got %q", out)
	}
}

func TestLatentStrategy_PreservesDocumentOrder(t *testing.T) {
	text := "Alpha first here. Beta second here. Gamma third here."

	out, err := latentStrategy{}.Summarize(text, 3)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	alpha := strings.Index(out, "Alpha")
	beta := strings.Index(out, "Beta")
	gamma := strings.Index(out, "Gamma")
	if alpha == -1 || beta == -1 || gamma == -1 || alpha > beta || beta > gamma {
		t.Errorf("sentences out of document order: %q", out)
	}
}

func TestLatentStrategy_StopwordOnlyInput(t *testing.T) {
	if _, err := (latentStrategy{}).Summarize("The and of. It was the.", 1); err == nil {
		t.Error("expected error when no content terms remain")
	}
}

func TestLeadStrategy_FirstSentences(t *testing.T) {
	out, err := leadStrategy{}.Summarize("One here. Two here. Three here.", 2)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if out != "One here. Two here." {
		t.Errorf("Summarize() = %q, want first two sentences", out)
	}
}

func TestLeadStrategy_ClampsSentenceCount(t *testing.T) {
	out, err := leadStrategy{}.Summarize("Only one sentence.", 10)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if out != "Only one sentence." {
		t.Errorf("Summarize() = %q, want the single sentence", out)
	}
}

func TestPrefixStrategy_RawTruncation(t *testing.T) {
	out, err := prefixStrategy{limit: 5}.Summarize("abcdefghij", 3)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if out != "abcde" {
		t.Errorf("Summarize() = %q, want abcde", out)
	}
}

// failingStrategy always errors, for exercising the fallback chain.
type failingStrategy struct{}

func (failingStrategy) Name() string { return "failing" }
func (failingStrategy) Summarize(string, int) (string, error) {
	return "", errors.New("boom")
}

// emptyStrategy succeeds with empty output.
type emptyStrategy struct{}

func (emptyStrategy) Name() string { return "empty" }
func (emptyStrategy) Summarize(string, int) (string, error) {
	return "", nil
}

func TestSummarizer_FallbackChain(t *testing.T) {
	s := NewWithStrategies(failingStrategy{}, emptyStrategy{}, prefixStrategy{limit: 4})

	out := s.Summarize("abcdefgh", 3)
	if out != "abcd" {
		t.Errorf("expected chain to reach the prefix strategy, got %q", out)
	}
}

func TestSummarizer_AllStrategiesFail(t *testing.T) {
	s := NewWithStrategies(failingStrategy{}, failingStrategy{})

	if out := s.Summarize("some text", 3); out != "" {
		t.Errorf("expected empty string when every strategy fails, got %q", out)
	}
}

func TestSummarizer_EmptyInput(t *testing.T) {
	s := New(5000)
	if out := s.Summarize("", 5); out != "" {
		t.Errorf("Summarize(\"\") = %q, want empty", out)
	}
}

func TestSummarizer_NonExpansion(t *testing.T) {
	s := New(5000)
	inputs := []string{
		"Single sentence only.",
		"We build software. We ship it fast. Customers pay us money. Everyone goes home happy.",
		"no punctuation at all just a stream of words going on and on",
	}
	for _, text := range inputs {
		out := s.Summarize(text, 2)
		if len(out) > len(text) {
			t.Errorf("summary longer than input: %d > %d for %q", len(out), len(text), text)
		}
	}
}

func TestSummarizer_SentenceCountClamped(t *testing.T) {
	s := New(5000)
	out := s.Summarize("Alpha one. Beta two.", 50)

	if got := len(Sentences(out)); got > 2 {
		t.Errorf("expected at most 2 sentences, got %d: %q", got, out)
	}
}
