package present

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"screener/internal/domain"
)

func TestTablePresent(t *testing.T) {
	report := &domain.Report{
		Keywords: []string{"python", "sql"},
		Entries: []domain.RankedEntry{
			{Name: "dev.pdf", Score: 0.8123, Rank: 1},
			{Name: "designer.pdf", Score: 0.1, Rank: 2},
		},
		Skipped:      []domain.DocumentError{{Name: "scan.pdf", Err: errors.New("malformed document")}},
		AverageScore: 0.45615,
		TopName:      "dev.pdf",
		TopPreview:   "Python and SQL developer",
	}
	var buf bytes.Buffer
	if err := NewTable(&buf).Present(report); err != nil {
		t.Fatalf("Present: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"python, sql",
		"dev.pdf",
		"0.8123",
		"designer.pdf",
		"Total resumes: 3",
		"Average score: 0.46",
		`document "scan.pdf": malformed document`,
		"Top candidate: dev.pdf",
		"Python and SQL developer",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "dev.pdf") > strings.Index(out, "designer.pdf") {
		t.Fatalf("entries out of order:\n%s", out)
	}
}
