// Package navigator locates contact-like pages linked from a fetched page.
package navigator

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultKeywords are the link tokens that mark a page as
// contact-related on German and English sites.
var DefaultKeywords = []string{"kontakt", "contact", "impressum", "imprint", "about", "über"}

// Finder scans page HTML for links whose target path or link text
// contains a contact-related keyword.
type Finder struct {
	keywords []string
}

// NewFinder creates a finder. With no keywords it falls back to
// DefaultKeywords.
func NewFinder(keywords ...string) *Finder {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	return &Finder{keywords: keywords}
}

// ContactLinks returns the contact-like URLs found in html, resolved
// against baseURL, deduplicated, in document order. Fragment-only and
// javascript links are skipped. The caller decides how many of the
// returned links to visit.
func (f *Finder) ContactLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}

		if !f.matches(strings.ToLower(href), strings.ToLower(s.Text())) {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		if !linkURL.IsAbs() {
			linkURL = base.ResolveReference(linkURL)
		}
		linkURL.Fragment = ""

		normalized := normalizeURL(linkURL.String())
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true
		links = append(links, normalized)
	})

	return links, nil
}

func (f *Finder) matches(href, text string) bool {
	for _, kw := range f.keywords {
		if strings.Contains(href, kw) || strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// normalizeURL normalizes a URL for deduplication: fragment dropped,
// trailing slash trimmed from non-root paths.
func normalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parsed.Fragment = ""
	if len(parsed.Path) > 1 && parsed.Path[len(parsed.Path)-1] == '/' {
		parsed.Path = parsed.Path[:len(parsed.Path)-1]
	}
	return parsed.String()
}

// IsSameDomain reports whether two URLs share a host.
func IsSameDomain(url1, url2 string) bool {
	parsed1, err := url.Parse(url1)
	if err != nil {
		return false
	}
	parsed2, err := url.Parse(url2)
	if err != nil {
		return false
	}
	return parsed1.Host == parsed2.Host
}
