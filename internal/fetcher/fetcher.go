// Package fetcher retrieves company web pages and derives the plain
// text the phone extractor works on.
package fetcher

import (
	"context"
	"time"
)

// Page is a fetched page reduced to what the pipeline needs: the raw
// HTML for link discovery and the extracted text for phone matching.
type Page struct {
	URL         string
	HTML        string
	Text        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
	Links       []string
}

// Fetcher abstracts the page retrieval strategy.
type Fetcher interface {
	// Fetch retrieves and parses the page at url.
	Fetch(ctx context.Context, url string) (Page, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static" or "dynamic".
	Type() string
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	// Insecure skips TLS certificate verification. Many small-business
	// sites carry broken or expired certificates; a failed handshake
	// would otherwise read as "no phone found".
	Insecure bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		Timeout:   10 * time.Second,
	}
}
