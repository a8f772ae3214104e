package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// BrowserFetcher drives a headless Chrome, for when the anti-bot check needs a JS engine
type BrowserFetcher struct {
	baseURL string
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewBrowserFetcher starts Chrome with the strong headers so that the site
// doesn't answer with a cloudflare 403. Close must be called to stop the browser.
func NewBrowserFetcher(ctx context.Context, baseURL string) (*BrowserFetcher, error) {
	allocOptions := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOptions...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		browserCancel()
		allocCancel()
	}

	err := chromedp.Run(browserCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			if enableErr := network.Enable().Do(ctx); enableErr != nil {
				return enableErr
			}
			return network.SetExtraHTTPHeaders(network.Headers(getHeader())).Do(ctx)
		}),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start the browser: %w", err)
	}

	return &BrowserFetcher{baseURL: baseURL, ctx: browserCtx, cancel: cancel}, nil
}

func (f *BrowserFetcher) Close() {
	f.cancel()
}

func (f *BrowserFetcher) Prime(ctx context.Context) error {
	_, err := f.navigate(ctx, f.baseURL)
	return err
}

func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := f.navigate(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// navigate loads url in the browser tab and returns the rendered HTML
func (f *BrowserFetcher) navigate(ctx context.Context, url string) (string, error) {
	// The tab lives on the browser context, ctx only bounds this navigation
	tabCtx, tabCancel := context.WithTimeout(f.ctx, REQUEST_TIMEOUT)
	defer tabCancel()
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	var html string
	res, err := chromedp.RunResponse(tabCtx, chromedp.Navigate(url))
	if err != nil {
		return "", err
	}
	if res != nil && res.Status >= 400 {
		return "", fmt.Errorf("GET %s: unexpected status %d %s", url, res.Status, res.StatusText)
	}
	err = chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	if err != nil {
		return "", err
	}
	return html, nil
}

// Generate the custom header that looks like a regular desktop Chrome
func getHeader() map[string]any {
	return map[string]any{
		"Accept":                    COMMON_HEADERS["Accept"],
		"Accept-Language":           COMMON_HEADERS["Accept-Language"],
		"Cache-Control":             "no-cache",
		"Pragma":                    "no-cache",
		"Referer":                   BASE_URL,
		"Sec-CH-UA":                 `"Not_A Brand";v="8", "Chromium";v="114", "Google Chrome";v="114"`,
		"Sec-CH-UA-Mobile":          "?0",
		"Sec-CH-UA-Platform":        `"Windows"`,
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "same-origin",
		"Sec-Fetch-User":            "?1",
		"Upgrade-Insecure-Requests": "1",
		"User-Agent":                COMMON_HEADERS["User-Agent"],
	}
}
