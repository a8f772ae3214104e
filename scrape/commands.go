package main

import (
	"context"

	"github.com/mikehquan19/residence-scraper/scrape/internal"
	"github.com/spf13/cobra"
)

var useBrowser bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&useBrowser, "browser", false, "Fetch pages with headless Chrome instead of plain HTTP.")

	urlsOut := urlsCmd.Flags().String("out", internal.URLS_CSV, "The CSV to write building URLs to.")
	urlsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withFetcher(cmd.Context(), func(fetcher internal.Fetcher) error {
			return internal.DumpBuildingURLs(cmd.Context(), fetcher, internal.DefaultSite, *urlsOut)
		})
	}

	detailsIn := detailsCmd.Flags().String("in", internal.URLS_CSV, "The CSV of building URLs.")
	detailsOut := detailsCmd.Flags().String("out", internal.DETAILS_CSV, "The CSV to write building details to.")
	detailsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withFetcher(cmd.Context(), func(fetcher internal.Fetcher) error {
			return internal.ScrapeBuildingDetails(cmd.Context(), fetcher, *detailsIn, *detailsOut)
		})
	}

	kbIn := kbCmd.Flags().String("in", internal.DETAILS_CSV, "The CSV of building details.")
	kbOut := kbCmd.Flags().String("out", internal.KB_TXT, "The knowledge-base text to write.")
	kbCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return internal.WriteKnowledgeBaseFile(*kbIn, *kbOut)
	}

	paragraphsFrom := paragraphsCmd.Flags().String("from", string(internal.FROM_KB), "Read the knowledge-base dump (kb) or the detail CSV (csv).")
	paragraphsIn := paragraphsCmd.Flags().String("in", "", "The input file, defaults to the file of --from.")
	paragraphsOut := paragraphsCmd.Flags().String("out", internal.PARAGRAPHS_TXT, "The paragraph text to write.")
	paragraphsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		source := internal.ParagraphSource(*paragraphsFrom)
		in := *paragraphsIn
		if in == "" {
			in = internal.KB_TXT
			if source == internal.FROM_CSV {
				in = internal.DETAILS_CSV
			}
		}
		return internal.WriteParagraphsFile(source, in, *paragraphsOut)
	}

	uploadIn := uploadCmd.Flags().String("in", internal.DETAILS_CSV, "The CSV of building details.")
	uploadCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadMongoConfig()
		if err != nil {
			return err
		}
		return internal.UploadBuildings(cmd.Context(), cfg, *uploadIn)
	}

	allCmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		err := withFetcher(ctx, func(fetcher internal.Fetcher) error {
			err := internal.DumpBuildingURLs(ctx, fetcher, internal.DefaultSite, internal.URLS_CSV)
			if err != nil {
				return err
			}
			return internal.ScrapeBuildingDetails(ctx, fetcher, internal.URLS_CSV, internal.DETAILS_CSV)
		})
		if err != nil {
			return err
		}
		if err := internal.WriteKnowledgeBaseFile(internal.DETAILS_CSV, internal.KB_TXT); err != nil {
			return err
		}
		return internal.WriteParagraphsFile(internal.FROM_KB, internal.KB_TXT, internal.PARAGRAPHS_TXT)
	}

	rootCmd.AddCommand(urlsCmd, detailsCmd, kbCmd, paragraphsCmd, uploadCmd, allCmd)
}

var urlsCmd = &cobra.Command{
	Use:   "urls [--out <urls.csv>]",
	Short: "Collects every building URL from the listing pages.",
}

var detailsCmd = &cobra.Command{
	Use:   "details [--in <urls.csv>] [--out <details.csv>]",
	Short: "Scrapes the details of every building URL.",
}

var kbCmd = &cobra.Command{
	Use:   "kb [--in <details.csv>] [--out <kb.txt>]",
	Short: "Dumps the building details as Key: Value blocks.",
}

var paragraphsCmd = &cobra.Command{
	Use:   "paragraphs [--from kb|csv] [--in <file>] [--out <paragraphs.txt>]",
	Short: "Renders one paragraph per building.",
}

var uploadCmd = &cobra.Command{
	Use:   "upload [--in <details.csv>]",
	Short: "Upserts the building details into MongoDB (MONGO_URI, MONGO_DB).",
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Runs urls, details, kb and paragraphs with the default files.",
}

// withFetcher opens the fetcher picked by --browser for the length of fn
func withFetcher(ctx context.Context, fn func(internal.Fetcher) error) error {
	if useBrowser {
		fetcher, err := internal.NewBrowserFetcher(ctx, internal.BASE_URL)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		return fn(fetcher)
	}

	fetcher, err := internal.NewHTTPFetcher(internal.HTTPFetcherOptions{
		BaseURL:          internal.BASE_URL,
		CloudflareBypass: true,
	})
	if err != nil {
		return err
	}
	return fn(fetcher)
}
