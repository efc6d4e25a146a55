package navigator

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// readTestdata reads a file from the testdata directory
func readTestdata(t *testing.T, filename string) string {
	t.Helper()
	path := filepath.Join("testdata", filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read testdata %s: %v", filename, err)
	}
	return string(data)
}

func TestFinder_ContactLinks(t *testing.T) {
	html := readTestdata(t, "home.html")

	f := NewFinder()
	links, err := f.ContactLinks(html, "https://muster-hv.de/")
	if err != nil {
		t.Fatalf("ContactLinks() error = %v", err)
	}

	want := []string{
		"https://muster-hv.de/kontakt",
		"https://muster-hv.de/impressum",
		"https://muster-hv.de/team",
		"https://partner.example.org/contact",
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("ContactLinks() = %v, want %v", links, want)
	}
}

func TestFinder_ContactLinks_KeywordInTextOnly(t *testing.T) {
	html := `<html><body><a href="/p/17">Impressum</a><a href="/p/18">Karriere</a></body></html>`

	f := NewFinder()
	links, err := f.ContactLinks(html, "https://example.de/")
	if err != nil {
		t.Fatalf("ContactLinks() error = %v", err)
	}

	want := []string{"https://example.de/p/17"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("ContactLinks() = %v, want %v", links, want)
	}
}

func TestFinder_ContactLinks_NoMatches(t *testing.T) {
	html := `<html><body><a href="/produkte">Produkte</a></body></html>`

	f := NewFinder()
	links, err := f.ContactLinks(html, "https://example.de/")
	if err != nil {
		t.Fatalf("ContactLinks() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links, got %v", links)
	}
}

func TestFinder_ContactLinks_CustomKeywords(t *testing.T) {
	html := `<html><body><a href="/erreichbarkeit">So finden Sie uns</a><a href="/kontakt">Kontakt</a></body></html>`

	f := NewFinder("erreichbarkeit")
	links, err := f.ContactLinks(html, "https://example.de/")
	if err != nil {
		t.Fatalf("ContactLinks() error = %v", err)
	}

	want := []string{"https://example.de/erreichbarkeit"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("ContactLinks() = %v, want %v", links, want)
	}
}

func TestFinder_ContactLinks_InvalidBaseURL(t *testing.T) {
	f := NewFinder()
	if _, err := f.ContactLinks("<html></html>", "://not-a-url"); err == nil {
		t.Error("expected error for invalid base URL")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.de/kontakt/", "https://example.de/kontakt"},
		{"https://example.de/kontakt#anfahrt", "https://example.de/kontakt"},
		{"https://example.de/", "https://example.de/"},
	}
	for _, tt := range tests {
		if got := normalizeURL(tt.input); got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsSameDomain(t *testing.T) {
	if !IsSameDomain("https://example.de/a", "https://example.de/b") {
		t.Error("same host should match")
	}
	if IsSameDomain("https://example.de/a", "https://other.de/a") {
		t.Error("different hosts should not match")
	}
}
