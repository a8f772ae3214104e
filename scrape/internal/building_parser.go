package internal

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikehquan19/residence-scraper/object"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// cleanText collapses every run of whitespace into one space
func cleanText(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// parseBuilding extracts a building from its detail page
func parseBuilding(doc *goquery.Document, buildingUrl string) object.Building {
	values := getDetails(doc)
	building := object.FromColumns(values)

	// The explicitly computed fields win over the definition list
	building.Name, building.Description = getNameAndDescription(doc, buildingUrl)
	building.Amenities = getAmenities(doc)
	building.Url = buildingUrl
	return building
}

// fallbackBuilding is the row written when a page can't be scraped
func fallbackBuilding(buildingUrl string) object.Building {
	return object.Building{Name: slugName(buildingUrl), Url: buildingUrl}
}

func getNameAndDescription(doc *goquery.Document, buildingUrl string) (string, string) {
	title := doc.Find("title").First()
	if title.Length() > 0 {
		name, _, _ := strings.Cut(title.Text(), "|")
		name = strings.TrimSpace(name)
		// The generic site title means the page has no building of its own
		if name != "" && !strings.Contains(name, BRAND_NAME) {
			description := cleanText(doc.Find(".summary-text .field--name-field-cu-summary").First().Text())
			return name, description
		}
	}

	return slugName(buildingUrl), ""
}

// slugName turns ".../content/47-claremont-avenue" into "47 Claremont Avenue"
func slugName(buildingUrl string) string {
	slug := strings.TrimRight(buildingUrl, "/")
	if parsed, err := url.Parse(slug); err == nil && parsed.Path != "" {
		slug = strings.TrimRight(parsed.Path, "/")
	}
	slug = path.Base(slug)
	if slug == "." || slug == "/" {
		return ""
	}
	return titleCase(strings.ReplaceAll(slug, "-", " "))
}

// titleCase upper-cases the first letter of every word and lower-cases the rest
func titleCase(text string) string {
	var builder strings.Builder
	startOfWord := true
	for _, r := range text {
		if unicode.IsLetter(r) {
			if startOfWord {
				builder.WriteRune(unicode.ToUpper(r))
			} else {
				builder.WriteRune(unicode.ToLower(r))
			}
			startOfWord = false
		} else {
			builder.WriteRune(r)
			startOfWord = true
		}
	}
	return builder.String()
}

// getDetails pairs the dt/dd entries of the building's definition list
func getDetails(doc *goquery.Document) map[string]string {
	details := make(map[string]string)
	dl := doc.Find(".table-def-list dl").First()
	if dl.Length() == 0 {
		return details
	}

	terms := dl.Find("dt")
	definitions := dl.Find("dd")
	for i := 0; i < terms.Length() && i < definitions.Length(); i++ {
		key := strings.TrimRight(cleanText(terms.Eq(i).Text()), ":")
		details[key] = cleanText(definitions.Eq(i).Text())
	}
	return details
}

// getAmenities reads the list following the "Building Amenities" heading
func getAmenities(doc *goquery.Document) string {
	var amenities []string
	heading := doc.Find("h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Building Amenities")
	}).First()
	if heading.Length() == 0 {
		return ""
	}

	heading.NextAllFiltered("ul").First().Find("li").Each(func(_ int, s *goquery.Selection) {
		amenities = append(amenities, cleanText(s.Text()))
	})
	return strings.Join(amenities, ", ")
}
