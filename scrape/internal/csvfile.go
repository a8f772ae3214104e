package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/mikehquan19/residence-scraper/object"
)

const URL_COLUMN string = "URL"

// writeURLs writes the single-column URL list
func writeURLs(w io.Writer, urls []string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{URL_COLUMN}); err != nil {
		return err
	}
	for _, u := range urls {
		if err := writer.Write([]string{u}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// readURLs reads the URL column of a CSV with a header row
func readURLs(r io.Reader) ([]string, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(records))
	for _, record := range records {
		urls = append(urls, record[URL_COLUMN])
	}
	return urls, nil
}

// buildingWriter writes the detail CSV one building at a time
type buildingWriter struct {
	csv *csv.Writer
}

func newBuildingWriter(w io.Writer) (*buildingWriter, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(object.Columns()); err != nil {
		return nil, err
	}
	return &buildingWriter{csv: writer}, nil
}

// Write flushes after every row so a crash keeps the rows scraped so far
func (w *buildingWriter) Write(building object.Building) error {
	if err := w.csv.Write(building.Row()); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

// readBuildings reads the detail CSV, a missing column leaves its field empty
func readBuildings(r io.Reader) ([]object.Building, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	buildings := make([]object.Building, 0, len(records))
	for _, record := range records {
		buildings = append(buildings, object.FromColumns(record))
	}
	return buildings, nil
}

// readRecords maps every data row to header -> value
func readRecords(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	// Short rows are read as missing trailing columns
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var records []map[string]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}
