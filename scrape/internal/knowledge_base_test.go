package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mikehquan19/residence-scraper/object"
	"github.com/stretchr/testify/require"
)

func TestWriteKnowledgeBase(t *testing.T) {
	buildings := []object.Building{
		{Name: "Hartley Hall", BuiltIn: "1905", Accessible: "Yes", Url: "https://example.edu/content/hartley-hall"},
		{Name: "Wien Hall", Description: "Tall\n  and  old"},
	}

	var out bytes.Buffer
	require.NoError(t, writeKnowledgeBase(&out, buildings))
	text := out.String()

	require.True(t, strings.HasPrefix(text, "\nBuilding Name: Hartley Hall\nDescription: N/A\nBuilt In: 1905\n"))
	require.Contains(t, text, "Accessibility: Yes\n")
	require.Contains(t, text, "Backup Superintendent: N/A\n")
	require.Contains(t, text, "URL: https://example.edu/content/hartley-hall\n"+KB_RULE+"\n")
	require.Contains(t, text, "Description: Tall and old\n")
	require.Equal(t, 2, strings.Count(text, KB_RULE))
	// one line per field plus the leading blank line and the rule
	require.Equal(t, 2*(len(object.Fields)+2), strings.Count(text, "\n"))
}

func TestParseKnowledgeBase(t *testing.T) {
	text := "\nBuilding Name: Hartley Hall\nBuilt In: 1905\nURL: https://example.edu/content/hartley-hall\n" + KB_RULE + "\n" +
		"\njust some words\n" + KB_RULE + "\n" +
		"\n  Superintendent :  Jane Doe  \r\n" + KB_RULE + "\n"

	blocks := parseKnowledgeBase(text)
	require.Equal(t, []map[string]string{
		{
			"Building Name": "Hartley Hall",
			"Built In":      "1905",
			"URL":           "https://example.edu/content/hartley-hall",
		},
		{"Superintendent": "Jane Doe"},
	}, blocks)
}

func TestParseKnowledgeBaseEmpty(t *testing.T) {
	require.Empty(t, parseKnowledgeBase(""))
	require.Empty(t, parseKnowledgeBase(KB_RULE+"\n"+KB_RULE))
}

func TestKnowledgeBaseRoundTrip(t *testing.T) {
	building := object.Building{
		Name:          "Hartley Hall",
		BuiltIn:       "1905",
		LaundryHours:  "24 hours",
		Amenities:     "Lounge, Bike room",
		Url:           "https://example.edu/content/hartley-hall",
		CableProvider: "Spectrum",
	}

	var out bytes.Buffer
	require.NoError(t, writeKnowledgeBase(&out, []object.Building{building}))
	blocks := parseKnowledgeBase(out.String())
	require.Len(t, blocks, 1)

	parsed := object.FromKeys(blocks[0])
	require.Equal(t, building.Name, parsed.Name)
	require.Equal(t, building.Url, parsed.Url)
	require.Equal(t, building.Amenities, parsed.Amenities)
	require.Equal(t, MISSING_VALUE, parsed.Superintendent)
}

func TestWriteKnowledgeBaseFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, DETAILS_CSV)
	outPath := filepath.Join(dir, KB_TXT)
	csvText := "Building Name,Built in,URL\nHartley Hall,1905,https://example.edu/content/hartley-hall\n"
	require.NoError(t, os.WriteFile(inPath, []byte(csvText), 0644))

	require.NoError(t, WriteKnowledgeBaseFile(inPath, outPath))

	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Built In: 1905\n")
	require.Contains(t, string(contents), "Laundry Hours: N/A\n")
}
