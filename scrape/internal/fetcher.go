package internal

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Fetcher loads pages of the housing site as parsed HTML documents
type Fetcher interface {
	// Prime visits the site root so that cookies and anti-bot tokens are set
	Prime(ctx context.Context) error
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

type HTTPFetcherOptions struct {
	BaseURL string
	// Swap the transport for one whose TLS fingerprint passes Cloudflare
	CloudflareBypass bool
}

// HTTPFetcher is a cookie-keeping resty session
type HTTPFetcher struct {
	baseURL string
	http    *resty.Client
}

func NewHTTPFetcher(opts HTTPFetcherOptions) (*HTTPFetcher, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeaders(COMMON_HEADERS)
	client.SetTimeout(REQUEST_TIMEOUT)

	return &HTTPFetcher{baseURL: opts.BaseURL, http: client}, nil
}

func (f *HTTPFetcher) Prime(ctx context.Context) error {
	_, err := f.http.R().SetContext(ctx).Get(f.baseURL)
	if err != nil {
		return fmt.Errorf("failed to prime session at %s: %w", f.baseURL, err)
	}
	return nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := f.http.R().
		SetContext(ctx).
		SetHeader("Referer", f.baseURL).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, res.Status())
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}
