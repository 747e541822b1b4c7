package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/oyvhov/trumftilbud/internal/logger"
)

// DynamicFetcher uses chromedp for JavaScript-rendered pages. Some
// circular deployments render their offer cards client-side, in which
// case the static response has no cards to parse.
type DynamicFetcher struct {
	config    Config
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewDynamic creates a dynamic fetcher with a headless browser instance.
func NewDynamic(cfg Config) (*DynamicFetcher, error) {
	logger.Debug("creating dynamic fetcher")

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	return &DynamicFetcher{
		config:    cfg,
		allocCtx:  allocCtx,
		cancelCtx: cancelAlloc,
	}, nil
}

// Fetch retrieves a page using the headless browser and returns the
// rendered HTML.
func (f *DynamicFetcher) Fetch(ctx context.Context, targetURL string) (Document, error) {
	logger.Debug("dynamic fetch starting", "url", targetURL)

	result := Document{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, f.config.Timeout)
	defer cancelTimeout()

	var html string
	var finalURL string
	actions := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible("body"),
		chromedp.OuterHTML("html", &html),
		chromedp.Location(&finalURL),
	}

	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		logger.Debug("dynamic fetch failed", "url", targetURL, "error", err)
		return result, fmt.Errorf("browser automation failed: %w", err)
	}

	result.Body = []byte(html)
	if finalURL != "" {
		result.URL = finalURL
	}
	result.StatusCode = 200 // chromedp doesn't easily expose status codes
	result.ContentType = "text/html"

	logger.Debug("dynamic fetch complete", "url", result.URL, "body_size", len(result.Body))
	return result, nil
}

// Close shuts down the browser allocator.
func (f *DynamicFetcher) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the fetcher type.
func (f *DynamicFetcher) Type() string {
	return "dynamic"
}
