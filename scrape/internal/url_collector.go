/* Building link collector for the residence listing pages */

package internal

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Site is where the listing pages live
type Site struct {
	BaseURL     string
	ListingPath string
}

var DefaultSite = Site{BaseURL: BASE_URL, ListingPath: LISTING_PATH}

// CollectBuildingURLs pages through the listing until a page brings no new
// links, and returns the sorted set of building URLs. Any failed page aborts
// the whole collection.
func CollectBuildingURLs(ctx context.Context, fetcher Fetcher, site Site, delay time.Duration) ([]string, error) {
	if err := fetcher.Prime(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	fmt.Println("Gathering building URLs...")
	for page := 0; ; page++ {
		listingUrl := fmt.Sprintf("%s%s?page=%d", site.BaseURL, site.ListingPath, page)
		fmt.Printf("  page %d -> %s\n", page, listingUrl)

		doc, err := fetcher.Fetch(ctx, listingUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch listing page %d: %w", page, err)
		}

		newCount := 0
		for _, link := range getListingLinks(doc, site) {
			if _, ok := seen[link]; !ok {
				seen[link] = struct{}{}
				newCount++
			}
		}
		fmt.Printf("    found %d new links\n", newCount)
		if newCount == 0 {
			break
		}

		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls, nil
}

// getListingLinks returns the absolute content links of a listing page,
// without the links that point back to the listing itself
func getListingLinks(doc *goquery.Document, site Site) []string {
	var links []string
	doc.Find(fmt.Sprintf("a[href^='%s']", CONTENT_PATH)).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href, _, _ = strings.Cut(href, "#")
		if strings.Contains(href, site.ListingPath) {
			return
		}
		links = append(links, site.BaseURL+href)
	})
	return links
}

// DumpBuildingURLs collects the building URLs and writes them to a CSV file.
// The file is only created once every listing page was fetched.
func DumpBuildingURLs(ctx context.Context, fetcher Fetcher, site Site, outPath string) error {
	urls, err := CollectBuildingURLs(ctx, fetcher, site, LISTING_DELAY)
	if err != nil {
		return err
	}

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := writeURLs(file, urls); err != nil {
		return fmt.Errorf("failed to write the URL list: %w", err)
	}

	fmt.Printf("Wrote %d URLs to %s\n", len(urls), outPath)
	return nil
}

// sleep waits for d unless ctx is done first
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
