package domain

// Document is a single uploaded file: its name and raw bytes.
type Document struct {
	Name string
	Data []byte
}

// RankedEntry is one row of a ranking result.
// Index is the entry's position among the ranked inputs; Text is that input's
// extracted text when the producer has it.
type RankedEntry struct {
	Name  string
	Score float64
	Rank  int
	Index int
	Text  string
}

// Report is everything a screening run produces for presentation.
type Report struct {
	Keywords     []string
	Entries      []RankedEntry
	Skipped      []DocumentError
	AverageScore float64
	TopName      string
	TopPreview   string
	TopSummary   string
}

// TextExtractor converts one document's bytes into plain text.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// KeywordExtractor returns the most important terms of a single text.
type KeywordExtractor interface {
	TopKeywords(text string, n int) ([]string, error)
}

// Ranker scores candidate texts against a reference text.
// Scores are aligned with the candidates slice.
type Ranker interface {
	Rank(reference string, candidates []string) ([]float64, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Presenter displays a finished report. The core never depends on it.
type Presenter interface {
	Present(report *Report) error
}
