package fetcher

import (
	"strings"
	"testing"
)

func TestParsePage(t *testing.T) {
	page := Page{
		URL: "https://example.de/",
		HTML: `<html><head><title> Beispiel </title><style>body{}</style></head>
<body>
<h1>Kontakt</h1>
<p>Tel:    089   123	4567</p>
<a href="/impressum">Impressum</a>
<a href="#top">Nach oben</a>
<a href="https://other.example.org/">Extern</a>
</body></html>`,
	}

	if err := parsePage(&page); err != nil {
		t.Fatalf("parsePage() error = %v", err)
	}

	if page.Title != "Beispiel" {
		t.Errorf("Title = %q, want %q", page.Title, "Beispiel")
	}

	// Horizontal whitespace collapses but line structure survives, so
	// downstream fax-context checks still see lines.
	if !strings.Contains(page.Text, "Tel: 089 123 4567") {
		t.Errorf("Text = %q, want collapsed phone line", page.Text)
	}
	if !strings.Contains(page.Text, "\n") {
		t.Errorf("Text = %q, want preserved line breaks", page.Text)
	}

	want := []string{"https://example.de/impressum", "https://other.example.org/"}
	if len(page.Links) != len(want) {
		t.Fatalf("Links = %v, want %v", page.Links, want)
	}
	for i := range want {
		if page.Links[i] != want[i] {
			t.Errorf("Links[%d] = %q, want %q", i, page.Links[i], want[i])
		}
	}
}

func TestParsePage_EmptyBody(t *testing.T) {
	page := Page{URL: "https://example.de/", HTML: "<html><body></body></html>"}
	if err := parsePage(&page); err != nil {
		t.Fatalf("parsePage() error = %v", err)
	}
	if page.Text != "" {
		t.Errorf("Text = %q, want empty", page.Text)
	}
}
