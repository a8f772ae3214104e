package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikehquan19/residence-scraper/object"
)

const PARAGRAPH_SEPARATOR string = "\n\n---\n\n"

// orDefault treats empty and "N/A" values as missing
func orDefault(value, fallback string) string {
	value = cleanText(value)
	if value == "" || value == MISSING_VALUE {
		return fallback
	}
	return value
}

// ToParagraph renders a building as prose, every missing field is replaced
// by a default phrase
func ToParagraph(b object.Building) string {
	access := "not accessible"
	if orDefault(b.Accessible, "No") == "Yes" {
		access = "accessible"
	}

	var paragraph strings.Builder
	fmt.Fprintf(&paragraph,
		"%s is a %s building located at %s. Built in %s, it houses residents in %s across %s. ",
		orDefault(b.Name, "This building"),
		BRAND_NAME,
		orDefault(b.EntranceLocation, "an unspecified location"),
		orDefault(b.BuiltIn, "an unknown year"),
		orDefault(b.ResidentialApartments, "unknown apartments"),
		orDefault(b.ResidentialFloors, "unknown floors"),
	)
	fmt.Fprintf(&paragraph,
		"The building is %s and offers amenities such as %s. ",
		access, orDefault(b.Amenities, "no listed amenities"),
	)
	if description := orDefault(b.Description, ""); description != "" {
		paragraph.WriteString(description + " ")
	}
	fmt.Fprintf(&paragraph,
		"Laundry is located %s and available during %s. ",
		orDefault(b.LaundryLocation, "an unspecified location"),
		orDefault(b.LaundryHours, "unspecified hours"),
	)
	fmt.Fprintf(&paragraph,
		"Trash disposal is in the %s, with pickups on %s and recycling on %s. ",
		orDefault(b.TrashLocation, "unspecified location"),
		orDefault(b.TrashPickupDays, "unspecified days"),
		orDefault(b.RecyclingPickupDays, "unspecified days"),
	)
	fmt.Fprintf(&paragraph,
		"Cable service is provided by %s. The superintendent is %s, and the portfolio manager is %s. ",
		orDefault(b.CableProvider, "unspecified"),
		orDefault(b.Superintendent, "unspecified"),
		orDefault(b.PortfolioManager, "unspecified"),
	)
	fmt.Fprintf(&paragraph, "More information: %s.", orDefault(b.Url, MISSING_VALUE))

	return paragraph.String()
}

// writeParagraphs writes every building's paragraph followed by the separator
func writeParagraphs(w io.Writer, buildings []object.Building) error {
	for _, building := range buildings {
		if _, err := io.WriteString(w, ToParagraph(building)+PARAGRAPH_SEPARATOR); err != nil {
			return err
		}
	}
	return nil
}

// paragraphsFromCSV reads the detail CSV row by row
func paragraphsFromCSV(r io.Reader, w io.Writer) (int, error) {
	buildings, err := readBuildings(r)
	if err != nil {
		return 0, err
	}
	return len(buildings), writeParagraphs(w, buildings)
}

// paragraphsFromKnowledgeBase reads the "Key: Value" dump block by block
func paragraphsFromKnowledgeBase(r io.Reader, w io.Writer) (int, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	var buildings []object.Building
	for _, values := range parseKnowledgeBase(string(text)) {
		buildings = append(buildings, object.FromKeys(values))
	}
	return len(buildings), writeParagraphs(w, buildings)
}

type ParagraphSource string

const (
	FROM_CSV ParagraphSource = "csv"
	FROM_KB  ParagraphSource = "kb"
)

// WriteParagraphsFile renders the paragraphs of the detail CSV or of the
// knowledge-base dump at inPath into outPath
func WriteParagraphsFile(source ParagraphSource, inPath, outPath string) error {
	var convert func(io.Reader, io.Writer) (int, error)
	switch source {
	case FROM_CSV:
		convert = paragraphsFromCSV
	case FROM_KB:
		convert = paragraphsFromKnowledgeBase
	default:
		return fmt.Errorf("unknown paragraph source %q, expected %q or %q", source, FROM_CSV, FROM_KB)
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer inFile.Close()
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	count, err := convert(inFile, outFile)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", inPath, err)
	}

	fmt.Printf("Done! %d paragraphs saved to %s\n", count, outPath)
	return nil
}
