package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"screener/internal/domain"
)

// PlainExtractor accepts UTF-8 text files as they are.
type PlainExtractor struct{}

// NewPlainExtractor creates a plain-text extractor.
func NewPlainExtractor() *PlainExtractor { return &PlainExtractor{} }

func (e *PlainExtractor) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", domain.ErrMalformedDocument)
	}
	s := strings.TrimPrefix(string(data), "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s), nil
}
