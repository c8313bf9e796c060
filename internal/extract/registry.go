// Package extract converts uploaded documents into plain text.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"screener/internal/domain"
)

// Registry selects an extractor by file extension.
type Registry struct {
	byExt map[string]domain.TextExtractor
	pdf   domain.TextExtractor
}

// NewRegistry registers the PDF, HTML and plain-text extractors.
func NewRegistry() *Registry {
	pdfEx := NewPDFExtractor()
	htmlEx := NewHTMLExtractor()
	plainEx := NewPlainExtractor()
	return &Registry{
		byExt: map[string]domain.TextExtractor{
			".pdf":  pdfEx,
			".html": htmlEx,
			".htm":  htmlEx,
			".txt":  plainEx,
			".md":   plainEx,
		},
		pdf: pdfEx,
	}
}

// Supported reports whether name has a registered extension.
func (r *Registry) Supported(name string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(name))]
	return ok
}

// LooksLikePDF reports whether data starts with a PDF header.
func LooksLikePDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// Accepts reports whether ExtractDocument would pick an extractor for a
// document with this name and content.
func (r *Registry) Accepts(name string, data []byte) bool {
	return r.Supported(name) || LooksLikePDF(data)
}

// ExtractDocument extracts doc with the extractor for its extension.
// Unknown extensions are accepted only when the bytes start like a PDF.
func (r *Registry) ExtractDocument(doc domain.Document) (string, error) {
	ex, ok := r.byExt[strings.ToLower(filepath.Ext(doc.Name))]
	if !ok {
		if !LooksLikePDF(doc.Data) {
			return "", &domain.DocumentError{Name: doc.Name, Err: fmt.Errorf("%w: unrecognised format", domain.ErrMalformedDocument)}
		}
		ex = r.pdf
	}
	text, err := ex.Extract(doc.Data)
	if err != nil {
		return "", &domain.DocumentError{Name: doc.Name, Err: err}
	}
	return text, nil
}

// Options controls batch extraction.
type Options struct {
	// Workers caps concurrent extractions; values below 1 mean one.
	Workers int
	// FailFast aborts the batch on the first failed document.
	FailFast bool
}

// Result is the outcome for one document of a batch.
type Result struct {
	Name string
	Text string
	Err  error
}

// Batch extracts docs concurrently. results[i] always belongs to docs[i].
// Without FailFast a failed document only sets its own Err.
func (r *Registry) Batch(ctx context.Context, docs []domain.Document, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(docs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, doc := range docs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Name: doc.Name, Err: err}
				return err
			}
			text, err := r.ExtractDocument(doc)
			results[i] = Result{Name: doc.Name, Text: text, Err: err}
			if err != nil && opts.FailFast {
				return err
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
