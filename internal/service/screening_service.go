package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"screener/internal/domain"
	"screener/internal/extract"
	"screener/internal/ranker"
)

// BatchExtractor is the extraction surface the service needs.
type BatchExtractor interface {
	Accepts(name string, data []byte) bool
	Batch(ctx context.Context, docs []domain.Document, opts extract.Options) ([]extract.Result, error)
}

// Option configures optional collaborators.
type Option func(*ScreeningService)

// WithSummarizer adds a summary of the top-ranked document to each report.
func WithSummarizer(s domain.Summarizer) Option {
	return func(svc *ScreeningService) { svc.summary = s }
}

// Options tunes a screening service.
type Options struct {
	KeywordCount     int
	PreviewChars     int
	SummarySentences int
	Extract          extract.Options
	Logger           *slog.Logger
}

type ScreeningService struct {
	extractor BatchExtractor
	keywords  domain.KeywordExtractor
	ranker    domain.Ranker
	summary   domain.Summarizer
	opts      Options
	log       *slog.Logger
}

func NewScreeningService(extractor BatchExtractor, keywords domain.KeywordExtractor, ranker domain.Ranker, opts Options, options ...Option) *ScreeningService {
	if opts.KeywordCount == 0 {
		opts.KeywordCount = 10
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	svc := &ScreeningService{extractor: extractor, keywords: keywords, ranker: ranker, opts: opts, log: logger}
	for _, o := range options {
		o(svc)
	}
	return svc
}

// LoadDocuments expands glob patterns and reads every file the extractor
// accepts: a registered extension, or PDF content under any name.
func (s *ScreeningService) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.IsDir() {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			if !s.extractor.Accepts(m, data) {
				s.log.Debug("skipping unsupported file", "path", m)
				continue
			}
			documents = append(documents, domain.Document{Name: filepath.Base(m), Data: data})
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no supported documents found")
	}
	return documents, nil
}

// Screen extracts, ranks and summarises docs against jobDescription.
// Documents that fail extraction are listed in Report.Skipped unless the
// extractor runs fail-fast, in which case the first failure is returned.
func (s *ScreeningService) Screen(ctx context.Context, jobDescription string, docs []domain.Document) (*domain.Report, error) {
	if !utf8.ValidString(jobDescription) {
		return nil, fmt.Errorf("%w: job description is not valid UTF-8", domain.ErrInvalidParameter)
	}
	kws, err := s.keywords.TopKeywords(jobDescription, s.opts.KeywordCount)
	if err != nil {
		return nil, fmt.Errorf("keywords: %w", err)
	}

	results, err := s.extractor.Batch(ctx, docs, s.opts.Extract)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	report := &domain.Report{Keywords: kws}
	names := make([]string, 0, len(results))
	texts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			var de *domain.DocumentError
			if !errors.As(r.Err, &de) {
				de = &domain.DocumentError{Name: r.Name, Err: r.Err}
			}
			s.log.Warn("document skipped", "name", r.Name, "err", r.Err)
			report.Skipped = append(report.Skipped, *de)
			continue
		}
		names = append(names, r.Name)
		texts = append(texts, r.Text)
	}

	scores, err := s.ranker.Rank(jobDescription, texts)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	entries, err := ranker.Order(names, scores)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	// Names may repeat across directories, so texts follow input positions.
	for i := range entries {
		entries[i].Text = texts[entries[i].Index]
	}
	report.Entries = entries
	if len(entries) > 0 {
		sum := 0.0
		for _, e := range entries {
			sum += e.Score
		}
		report.AverageScore = sum / float64(len(entries))
		top := entries[0]
		report.TopName = top.Name
		report.TopPreview = Preview(top.Text, s.opts.PreviewChars)
		if s.summary != nil {
			summary, err := s.summary.Summarize(top.Text, s.opts.SummarySentences)
			if err != nil {
				return nil, fmt.Errorf("summarize: %w", err)
			}
			report.TopSummary = summary
		}
	}
	s.log.Info("screening complete", "ranked", len(entries), "skipped", len(report.Skipped), "average", report.AverageScore)
	return report, nil
}

// Preview returns the first limit runes of text, marking truncation with "...".
// A limit of zero or less returns text unchanged.
func Preview(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}
