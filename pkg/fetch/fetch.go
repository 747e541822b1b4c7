// Package fetch handles retrieval of retailer pages and circular
// documents.
package fetch

import (
	"context"
	"fmt"
	"time"
)

// Document represents one fetched resource, HTML page or raw PDF bytes.
type Document struct {
	// URL is the final resolved URL after redirects. Relative links
	// inside the document must be resolved against it.
	URL         string
	Body        []byte
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// HTML returns the body as a string.
func (d Document) HTML() string {
	return string(d.Body)
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves a document from a URL.
	Fetch(ctx context.Context, url string) (Document, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static" or "dynamic".
	Type() string
}

// Config holds common fetcher configuration. It is passed in explicitly
// at construction so the extraction core stays free of process-wide
// state.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns the defaults used against the retailer sites: a
// desktop browser user agent and a 30 second request timeout.
func DefaultConfig() Config {
	return Config{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/124.0.0.0 Safari/537.36",
		Timeout: 30 * time.Second,
	}
}

// Mode determines how pages are fetched.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// New creates a fetcher for the given mode.
func New(mode Mode, cfg Config) (Fetcher, error) {
	switch mode {
	case ModeStatic:
		return NewStatic(cfg), nil
	case ModeDynamic:
		return NewDynamic(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", mode)
	}
}
