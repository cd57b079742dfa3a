// Package corpus loads word lists from line-oriented sources: one word
// per line, surrounding whitespace trimmed, blank lines skipped.
// Encoding and file handling live here so the counting layer stays a
// pure in-memory transform.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read collects the words of r in input order.
func Read(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	return words, nil
}

// ReadFile reads the word list at path.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer file.Close()

	return Read(file)
}
