package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"screener/internal/domain"
)

// HTMLExtractor returns the visible text of an HTML document.
// The whole document counts as a single page.
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTML text extractor.
func NewHTMLExtractor() *HTMLExtractor { return &HTMLExtractor{} }

var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "tr": {}, "section": {}, "article": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "header": {}, "footer": {},
}

// Extract skips text inside script and style elements and breaks lines at block elements.
func (e *HTMLExtractor) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: html is not valid UTF-8", domain.ErrMalformedDocument)
	}
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: html: %v", domain.ErrMalformedDocument, err)
	}

	var lines []string
	var cur strings.Builder
	flush := func() {
		if line := strings.Join(strings.Fields(cur.String()), " "); line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}
	// track a "skip depth" to ignore text under <script> or <style>
	var skipDepth int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		skipped := n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style"))
		if skipped {
			skipDepth++
		}
		_, block := blockElements[strings.ToLower(n.Data)]
		block = block && n.Type == html.ElementNode
		if block {
			flush()
		}
		if skipDepth == 0 && n.Type == html.TextNode {
			cur.WriteString(n.Data)
			cur.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
		if skipped {
			skipDepth--
		}
	}
	walk(root)
	flush()
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
