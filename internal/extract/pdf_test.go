package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"screener/internal/domain"
)

// buildPDF writes a minimal single-font PDF with one page per entry.
// An empty entry produces a page with an empty content stream.
func buildPDF(pages ...string) []byte {
	streams := make([]string, len(pages))
	for i, text := range pages {
		if text != "" {
			streams[i] = fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		}
	}
	return buildPDFStreams(streams...)
}

// buildPDFStreams is buildPDF with raw page content streams.
func buildPDFStreams(pages ...string) []byte {
	var objs []string
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, stream := range pages {
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objs)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func TestPDFExtract(t *testing.T) {
	data := buildPDF("Python developer", "", "SQL expert")
	text, err := NewPDFExtractor().Extract(data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	py := strings.Index(text, "Python developer")
	sql := strings.Index(text, "SQL expert")
	if py < 0 || sql < 0 {
		t.Fatalf("Extract = %q; want both page texts", text)
	}
	if py > sql {
		t.Fatalf("page order not preserved: %q", text)
	}
	if !strings.Contains(text[py:sql], "\n") {
		t.Fatalf("pages not separated by newline: %q", text)
	}
	if text != strings.TrimSpace(text) {
		t.Fatalf("result not trimmed: %q", text)
	}
}

func TestPDFExtractCorruptPage(t *testing.T) {
	// "end" without a matching "begin" makes the content interpreter fail.
	data := buildPDFStreams(
		"BT /F1 12 Tf 72 712 Td (Python developer) Tj ET",
		"BT /F1 12 Tf 72 712 Td (lost) Tj end ET",
		"BT /F1 12 Tf 72 712 Td (SQL expert) Tj ET",
	)
	text, err := NewPDFExtractor().Extract(data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "Python developer\nSQL expert" {
		t.Fatalf("Extract = %q; want the readable pages only", text)
	}
}

func TestPDFExtractNoText(t *testing.T) {
	text, err := NewPDFExtractor().Extract(buildPDF("", ""))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "" {
		t.Fatalf("Extract = %q; want empty", text)
	}
}

func TestPDFExtractMalformed(t *testing.T) {
	valid := buildPDF("hello")
	inputs := map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("this is not a pdf at all"),
		"truncated": valid[:40],
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := NewPDFExtractor().Extract(data)
			if !errors.Is(err, domain.ErrMalformedDocument) {
				t.Fatalf("err = %v; want ErrMalformedDocument", err)
			}
		})
	}
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		pages []string
		want  string
	}{
		{nil, ""},
		{[]string{"", "  ", "\n"}, ""},
		{[]string{"one", "", "two"}, "one\ntwo"},
		{[]string{"  lead", "trail  "}, "lead\ntrail"},
	}
	for _, tt := range tests {
		if got := joinPages(tt.pages); got != tt.want {
			t.Fatalf("joinPages(%q) = %q; want %q", tt.pages, got, tt.want)
		}
	}
}
