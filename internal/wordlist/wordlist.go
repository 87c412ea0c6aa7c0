// Package wordlist reads newline-delimited word files and applies the
// normalization shared by the word source, the dictionary and validation.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases s and trims surrounding whitespace and newlines
func Normalize(s string) string {
	// A Caser keeps state between calls, so build one per use
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Length counts characters, not bytes
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Read returns the normalized, non-blank lines of r. Lines starting with
// '#' are comments.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, Normalize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ReadFile reads a word list from disk
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
