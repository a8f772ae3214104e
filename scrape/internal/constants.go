package internal

import "time"

const (
	BASE_URL     string = "https://residential.columbia.edu"
	LISTING_PATH string = "/content/explore-residences"
	CONTENT_PATH string = "/content/"

	// Brand name used in page titles and in the paragraph template
	BRAND_NAME string = "Columbia Residential"

	URLS_CSV         string = "columbia_building_urls.csv"
	DETAILS_CSV      string = "columbia_buildings_detailed.csv"
	KB_TXT           string = "columbia_buildings_kb.txt"
	PARAGRAPHS_TXT   string = "columbia_buildings_paragraphs.txt"
	MONGO_DB         string = "housing"
	MONGO_COLLECTION string = "buildings"
)

const (
	REQUEST_TIMEOUT time.Duration = 20 * time.Second
	LISTING_DELAY   time.Duration = 200 * time.Millisecond
	DETAIL_DELAY    time.Duration = 500 * time.Millisecond
)

// Headers sent with every request so the site serves us like a desktop browser
var COMMON_HEADERS = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}
