// Package lstv scrapes LiveSoccerTV for per-match US broadcast data.
// Coverage shrinks the farther a match is in the future; everything
// here degrades to "no data" rather than failing the run.
package lstv

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// PageFetcher fetches one page and returns its rendered HTML.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Browser fetches pages through headless Chrome. LiveSoccerTV sits
// behind bot protection that plain HTTP clients cannot get past.
type Browser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

// NewBrowser starts a headless Chrome allocator shared by all fetches.
func NewBrowser(ctx context.Context) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.UserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	return &Browser{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		timeout:     30 * time.Second,
	}
}

// Fetch renders the page in a fresh tab and returns the document HTML.
func (b *Browser) Fetch(ctx context.Context, url string) (string, error) {
	tabCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-tabCtx.Done():
		}
	}()

	var pageHTML string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &pageHTML),
	)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return pageHTML, nil
}

// Close tears down the browser allocator.
func (b *Browser) Close() {
	b.allocCancel()
}
