// Package ranker scores candidate texts against a reference text.
//
// Every call builds its own vocabulary over the reference and the candidates,
// so a candidate's score depends on which other candidates share the batch.
package ranker

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"screener/internal/domain"
	"screener/internal/embedding/tfidf"
	"screener/internal/textproc"
)

// Ranker computes TF-IDF cosine similarity between a reference and candidates.
type Ranker struct {
	analyzer *textproc.Analyzer
}

// New creates a ranker. removeStopwords controls whether English function
// words are excluded from the vocabulary.
func New(removeStopwords bool) *Ranker {
	return &Ranker{analyzer: textproc.NewAnalyzer(removeStopwords)}
}

// Rank returns one score in [0, 1] per candidate, in input order.
func (r *Ranker) Rank(reference string, candidates []string) ([]float64, error) {
	if !utf8.ValidString(reference) {
		return nil, fmt.Errorf("%w: reference text is not valid UTF-8", domain.ErrInvalidParameter)
	}
	for i, c := range candidates {
		if !utf8.ValidString(c) {
			return nil, fmt.Errorf("%w: candidate %d is not valid UTF-8", domain.ErrInvalidParameter, i)
		}
	}
	if len(candidates) == 0 {
		return []float64{}, nil
	}

	batch := make([]string, 0, len(candidates)+1)
	batch = append(batch, reference)
	batch = append(batch, candidates...)
	vocab := tfidf.BuildVocabulary(r.analyzer, batch)

	ref := tfidf.Vectorize(reference, vocab)
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = Cosine(ref, tfidf.Vectorize(c, vocab))
	}
	return scores, nil
}

// Order pairs names with scores and sorts them by descending score.
// Equal scores keep their input order; ranks start at 1. Each entry records
// its input position in Index.
func Order(names []string, scores []float64) ([]domain.RankedEntry, error) {
	if len(names) != len(scores) {
		return nil, fmt.Errorf("%w: %d names for %d scores", domain.ErrInvalidParameter, len(names), len(scores))
	}
	entries := make([]domain.RankedEntry, len(names))
	for i := range names {
		entries[i] = domain.RankedEntry{Name: names[i], Score: scores[i], Index: i}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
