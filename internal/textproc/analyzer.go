package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Analyzer turns text into lower-cased terms.
// A term is a maximal run of letters, digits or underscores of at least two runes.
type Analyzer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewAnalyzer creates an analyzer. With removeStopwords set, common English
// function words are dropped from the output.
func NewAnalyzer(removeStopwords bool) *Analyzer {
	a := &Analyzer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}_]+`),
	}
	if removeStopwords {
		a.stopwords = EnglishStopwords()
	}
	return a
}

// Tokens returns the terms of text in order of occurrence.
func (a *Analyzer) Tokens(text string) []string {
	lower := strings.ToLower(norm.NFKC.String(text))
	raw := a.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, t := range raw {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		if a.IsStopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// IsStopword reports whether term is filtered by this analyzer.
func (a *Analyzer) IsStopword(term string) bool {
	_, ok := a.stopwords[term]
	return ok
}
