package extract

import (
	"errors"
	"strings"
	"testing"

	"screener/internal/domain"
)

func TestHTMLExtract(t *testing.T) {
	doc := `
	<!doctype html>
	<html>
	  <head>
	    <style>body{color:red}</style>
	    <script>var x=1</script>
	  </head>
	  <body>
	    <h1>Jane   Doe</h1>
	    <p>Go developer, <b>Kubernetes</b></p>
	    <ul><li>PostgreSQL</li><li>Kafka</li></ul>
	  </body>
	</html>`
	text, err := NewHTMLExtractor().Extract([]byte(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Jane Doe\nGo developer, Kubernetes\nPostgreSQL\nKafka"
	if text != want {
		t.Fatalf("Extract = %q; want %q", text, want)
	}
	for _, bad := range []string{"color", "var x"} {
		if strings.Contains(text, bad) {
			t.Fatalf("script/style text %q leaked into %q", bad, text)
		}
	}
}

func TestHTMLExtractInvalidUTF8(t *testing.T) {
	_, err := NewHTMLExtractor().Extract([]byte("<p>\xff\xfe</p>"))
	if !errors.Is(err, domain.ErrMalformedDocument) {
		t.Fatalf("err = %v; want ErrMalformedDocument", err)
	}
}

func TestPlainExtract(t *testing.T) {
	text, err := NewPlainExtractor().Extract([]byte("\ufeff  Go developer\r\nSQL  \n"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "Go developer\nSQL" {
		t.Fatalf("Extract = %q", text)
	}
	if _, err := NewPlainExtractor().Extract([]byte{0xff}); !errors.Is(err, domain.ErrMalformedDocument) {
		t.Fatalf("err = %v; want ErrMalformedDocument", err)
	}
}
