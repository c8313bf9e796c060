// Package tfidf builds batch-relative TF-IDF vectors.
//
// A Vocabulary is derived from exactly the texts passed to BuildVocabulary.
// Vectors are only comparable when produced from the same Vocabulary.
package tfidf

import (
	"math"
	"sort"

	"screener/internal/textproc"
)

// Vocabulary holds the distinct terms of one batch and their IDF weights.
type Vocabulary struct {
	analyzer *textproc.Analyzer
	index    map[string]int
	terms    []string
	idf      []float64
	docs     int
}

// BuildVocabulary collects the terms of texts and computes smoothed IDF values.
// An empty batch, or one with no terms, yields an empty vocabulary.
func BuildVocabulary(analyzer *textproc.Analyzer, texts []string) *Vocabulary {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range analyzer.Tokens(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vocabulary{
		analyzer: analyzer,
		index:    make(map[string]int, len(terms)),
		terms:    terms,
		idf:      make([]float64, len(terms)),
		docs:     len(texts),
	}
	n := float64(len(texts))
	for i, term := range terms {
		v.index[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return v
}

// Dimension returns the number of terms in the vocabulary.
func (v *Vocabulary) Dimension() int { return len(v.terms) }

// Documents returns the number of texts the vocabulary was built from.
func (v *Vocabulary) Documents() int { return v.docs }

// Terms returns the vocabulary terms in index order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// IDF returns the inverse document frequency of term and whether it is known.
func (v *Vocabulary) IDF(term string) (float64, bool) {
	idx, ok := v.index[term]
	if !ok {
		return 0, false
	}
	return v.idf[idx], true
}

// Vectorize computes the L2-normalised TF-IDF vector of text over vocab.
// Terms outside the vocabulary are ignored; a text with none of its terms
// yields the zero vector.
func Vectorize(text string, vocab *Vocabulary) []float64 {
	vec := make([]float64, vocab.Dimension())
	tf := make(map[int]int)
	total := 0
	for _, tok := range vocab.analyzer.Tokens(text) {
		if idx, ok := vocab.index[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		tfv := float64(count) / float64(total)
		vec[idx] = tfv * vocab.idf[idx]
	}
	// L2 normalize
	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
