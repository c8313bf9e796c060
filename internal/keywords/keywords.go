package keywords

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"screener/internal/domain"
	"screener/internal/embedding/tfidf"
	"screener/internal/textproc"
)

// DefaultCount is the number of keywords shown when no count is configured.
const DefaultCount = 10

// Extractor ranks the terms of a single text by TF-IDF weight.
// With a one-document corpus the IDF is constant, so the order is by term frequency.
type Extractor struct {
	analyzer *textproc.Analyzer
}

// NewExtractor creates a keyword extractor that drops English stop words.
func NewExtractor() *Extractor {
	return &Extractor{analyzer: textproc.NewAnalyzer(true)}
}

// TopKeywords returns up to n terms of text by descending weight.
// Ties keep the order in which terms first appear.
func (e *Extractor) TopKeywords(text string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: keyword count must be at least 1, got %d", domain.ErrInvalidParameter, n)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", domain.ErrInvalidParameter)
	}
	tokens := e.analyzer.Tokens(text)
	if len(tokens) == 0 {
		return []string{}, nil
	}
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if _, ok := firstSeen[tok]; !ok {
			firstSeen[tok] = i
		}
	}

	vocab := tfidf.BuildVocabulary(e.analyzer, []string{text})
	weights := tfidf.Vectorize(text, vocab)
	terms := vocab.Terms()
	order := make([]int, len(terms))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if weights[a] != weights[b] {
			return weights[a] > weights[b]
		}
		return firstSeen[terms[a]] < firstSeen[terms[b]]
	})
	if n > len(order) {
		n = len(order)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = terms[order[i]]
	}
	return out, nil
}

// Format joins keywords for display.
func Format(terms []string) string {
	return strings.Join(terms, ", ")
}
