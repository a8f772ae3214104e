/* Building detail scraper for the residence pages */

package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// ScrapeBuildings fetches every building page in order and writes one row per
// URL to w. A page that fails still gets a row with just its name and URL.
// Only write failures and cancellation are returned as errors.
func ScrapeBuildings(ctx context.Context, fetcher Fetcher, urls []string, w io.Writer, delay time.Duration) (int, error) {
	writer, err := newBuildingWriter(w)
	if err != nil {
		return 0, err
	}

	if err := fetcher.Prime(ctx); err != nil {
		// The pages may still load without the cookies
		slog.WarnContext(ctx, "failed to prime the session", "err", err)
	}

	scraped := 0
	for i, buildingUrl := range urls {
		fmt.Printf("[%d/%d] %s\n", i+1, len(urls), buildingUrl)

		doc, err := fetcher.Fetch(ctx, buildingUrl)
		if err != nil {
			if ctx.Err() != nil {
				return scraped, ctx.Err()
			}
			slog.ErrorContext(ctx, "failed to scrape building", "url", buildingUrl, "err", err)
			if err := writer.Write(fallbackBuilding(buildingUrl)); err != nil {
				return scraped, err
			}
		} else {
			if err := writer.Write(parseBuilding(doc, buildingUrl)); err != nil {
				return scraped, err
			}
			scraped++
			fmt.Println("  scraped")
		}

		if err := sleep(ctx, delay); err != nil {
			return scraped, err
		}
	}

	return scraped, nil
}

// ScrapeBuildingDetails reads the URL list CSV and writes the detail CSV
func ScrapeBuildingDetails(ctx context.Context, fetcher Fetcher, inPath, outPath string) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer inFile.Close()
	urls, err := readURLs(inFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	scraped, err := ScrapeBuildings(ctx, fetcher, urls, outFile, DETAIL_DELAY)
	if err != nil {
		return err
	}

	fmt.Printf("Scraped %d of %d buildings to %s\n", scraped, len(urls), outPath)
	return nil
}
