package keywords

import (
	"errors"
	"reflect"
	"testing"

	"screener/internal/domain"
	"screener/internal/textproc"
)

func TestTopKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{"frequency order", "python python sql developer", 2, []string{"python", "sql"}},
		{"ties by first occurrence", "kubernetes docker terraform", 10, []string{"kubernetes", "docker", "terraform"}},
		{"stop words removed", "the and of python", 5, []string{"python"}},
		{"case folded", "Go go GO rust", 1, []string{"go"}},
		{"empty text", "", 3, []string{}},
		{"only stop words", "the of and with", 3, []string{}},
	}
	ex := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ex.TopKeywords(tt.text, tt.n)
			if err != nil {
				t.Fatalf("TopKeywords: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("TopKeywords(%q, %d) = %#v; want %#v", tt.text, tt.n, got, tt.want)
			}
		})
	}
}

func TestTopKeywordsProperties(t *testing.T) {
	text := "Senior Go engineer. Go, gRPC, PostgreSQL and Kafka. We value Go experience, PostgreSQL tuning and on-call ownership."
	tokens := map[string]bool{}
	for _, tok := range textproc.NewAnalyzer(false).Tokens(text) {
		tokens[tok] = true
	}
	stop := textproc.EnglishStopwords()
	ex := NewExtractor()
	for n := 1; n <= 20; n++ {
		got, err := ex.TopKeywords(text, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(got) > n {
			t.Fatalf("n=%d: got %d terms", n, len(got))
		}
		seen := map[string]bool{}
		for _, term := range got {
			if !tokens[term] {
				t.Fatalf("n=%d: %q not drawn from text", n, term)
			}
			if _, ok := stop[term]; ok {
				t.Fatalf("n=%d: stop word %q returned", n, term)
			}
			if seen[term] {
				t.Fatalf("n=%d: duplicate %q", n, term)
			}
			seen[term] = true
		}
	}
	got, _ := ex.TopKeywords(text, 2)
	if want := []string{"go", "postgresql"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("top 2 = %v; want %v", got, want)
	}
}

func TestTopKeywordsInvalid(t *testing.T) {
	ex := NewExtractor()
	for _, n := range []int{0, -3} {
		if _, err := ex.TopKeywords("python", n); !errors.Is(err, domain.ErrInvalidParameter) {
			t.Fatalf("n=%d: err = %v; want ErrInvalidParameter", n, err)
		}
	}
	if _, err := ex.TopKeywords("bad \xff utf8", 3); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("invalid UTF-8: err = %v; want ErrInvalidParameter", err)
	}
}

func TestFormat(t *testing.T) {
	if got := Format([]string{"python", "sql"}); got != "python, sql" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format(nil); got != "" {
		t.Fatalf("Format(nil) = %q", got)
	}
}
