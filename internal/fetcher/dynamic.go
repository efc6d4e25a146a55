package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Dynamic fetches pages through a headless browser, for sites that
// render their contact details with JavaScript.
type Dynamic struct {
	config    Config
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewDynamic creates a dynamic fetcher with a shared browser allocator.
func NewDynamic(cfg Config) (*Dynamic, error) {
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
		chromedp.WindowSize(1366, 768),
	)
	if cfg.Insecure {
		opts = append(opts, chromedp.Flag("ignore-certificate-errors", true))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Dynamic{
		config:    cfg,
		allocCtx:  allocCtx,
		cancelCtx: cancelAlloc,
	}, nil
}

// Fetch retrieves the page at targetURL using a headless browser.
func (f *Dynamic) Fetch(ctx context.Context, targetURL string) (Page, error) {
	page := Page{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, f.config.Timeout)
	defer cancelTimeout()

	// Stop the browser run when the caller cancels
	stop := context.AfterFunc(ctx, cancelBrowser)
	defer stop()

	var html, title string
	actions := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible("body"),
		chromedp.OuterHTML("html", &html),
		chromedp.Title(&title),
	}

	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		return page, fmt.Errorf("browser automation failed: %w", err)
	}

	page.HTML = html
	page.Title = title
	// chromedp doesn't easily expose status codes
	page.StatusCode = 200

	if err := parsePage(&page); err != nil {
		return page, fmt.Errorf("failed to parse content: %w", err)
	}

	return page, nil
}

// Close releases browser resources.
func (f *Dynamic) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the fetcher type.
func (f *Dynamic) Type() string {
	return "dynamic"
}
