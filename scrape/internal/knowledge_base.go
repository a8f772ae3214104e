package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikehquan19/residence-scraper/object"
)

// Rule that ends every building block of the knowledge base
var KB_RULE = strings.Repeat("-", 80)

const MISSING_VALUE string = "N/A"

// writeKnowledgeBase writes one "Key: Value" block per building
func writeKnowledgeBase(w io.Writer, buildings []object.Building) error {
	for _, building := range buildings {
		var block strings.Builder
		block.WriteString("\n")
		for _, f := range object.Fields {
			value := cleanText(f.Value(&building))
			if value == "" {
				value = MISSING_VALUE
			}
			fmt.Fprintf(&block, "%s: %s\n", f.Key, value)
		}
		block.WriteString(KB_RULE + "\n")

		if _, err := io.WriteString(w, block.String()); err != nil {
			return err
		}
	}
	return nil
}

// parseKnowledgeBase splits the dump on the rule and reads every block's
// "Key: Value" lines. Blocks without any such line are dropped.
func parseKnowledgeBase(text string) []map[string]string {
	var blocks []map[string]string
	for _, block := range strings.Split(strings.TrimSpace(text), KB_RULE) {
		values := parseBlock(block)
		if len(values) > 0 {
			blocks = append(blocks, values)
		}
	}
	return blocks
}

func parseBlock(block string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}

// WriteKnowledgeBaseFile converts the detail CSV into the knowledge-base dump
func WriteKnowledgeBaseFile(inPath, outPath string) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer inFile.Close()
	buildings, err := readBuildings(inFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	if err := writeKnowledgeBase(outFile, buildings); err != nil {
		return err
	}

	fmt.Printf("Saved %d buildings to %s\n", len(buildings), outPath)
	return nil
}
