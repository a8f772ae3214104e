package internal

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikehquan19/residence-scraper/object"
	"github.com/stretchr/testify/require"
)

func detailServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "<html><body>home</body></html>")
	})
	mux.HandleFunc("/content/hartley-hall", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, hartleyHallPage)
	})
	mux.HandleFunc("/content/broken-hall", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestScrapeBuildings(t *testing.T) {
	server := detailServer(t)
	urls := []string{
		server.URL + "/content/hartley-hall",
		server.URL + "/content/broken-hall",
		server.URL + "/content/john-jay-hall",
	}

	var out bytes.Buffer
	scraped, err := ScrapeBuildings(context.Background(), newTestFetcher(t, server.URL), urls, &out, 0)
	require.NoError(t, err)
	require.Equal(t, 1, scraped)

	rows := readCSV(t, out.Bytes())
	require.Len(t, rows, len(urls)+1)
	require.Equal(t, object.Columns(), rows[0])

	hartley := object.FromColumns(zipRow(rows[0], rows[1]))
	require.Equal(t, "Hartley Hall", hartley.Name)
	require.Equal(t, "1905", hartley.BuiltIn)
	require.Equal(t, "Lounge, Bike room", hartley.Amenities)
	require.Equal(t, urls[0], hartley.Url)

	broken := object.FromColumns(zipRow(rows[0], rows[2]))
	require.Equal(t, object.Building{Name: "Broken Hall", Url: urls[1]}, broken)

	missing := object.FromColumns(zipRow(rows[0], rows[3]))
	require.Equal(t, object.Building{Name: "John Jay Hall", Url: urls[2]}, missing)
}

func TestScrapeBuildingsKeepsEveryRowWhenAllFail(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	urls := []string{
		baseURL + "/content/a-hall",
		baseURL + "/content/b-hall",
		baseURL + "/content/c-hall",
		baseURL + "/content/a-hall",
	}

	var out bytes.Buffer
	scraped, err := ScrapeBuildings(context.Background(), newTestFetcher(t, baseURL), urls, &out, 0)
	require.NoError(t, err)
	require.Zero(t, scraped)

	rows := readCSV(t, out.Bytes())
	require.Len(t, rows, len(urls)+1)
	for i, u := range urls {
		require.Equal(t, u, rows[i+1][len(object.Fields)-1])
	}
}

func TestScrapeBuildingsStopsWhenCancelled(t *testing.T) {
	server := detailServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := ScrapeBuildings(ctx, newTestFetcher(t, server.URL), []string{server.URL + "/content/hartley-hall"}, &out, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScrapeBuildingDetails(t *testing.T) {
	server := detailServer(t)
	dir := t.TempDir()
	inPath := filepath.Join(dir, URLS_CSV)
	outPath := filepath.Join(dir, DETAILS_CSV)

	var in bytes.Buffer
	require.NoError(t, writeURLs(&in, []string{
		server.URL + "/content/broken-hall",
		server.URL + "/content/hartley-hall",
	}))
	require.NoError(t, os.WriteFile(inPath, in.Bytes(), 0644))

	err := ScrapeBuildingDetails(context.Background(), newTestFetcher(t, server.URL), inPath, outPath)
	require.NoError(t, err)

	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)
	rows := readCSV(t, contents)
	require.Len(t, rows, 3)
	require.Equal(t, "Broken Hall", rows[1][0])
	require.Equal(t, "Hartley Hall", rows[2][0])
}

func zipRow(header, row []string) map[string]string {
	values := make(map[string]string, len(header))
	for i, column := range header {
		values[column] = row[i]
	}
	return values
}
