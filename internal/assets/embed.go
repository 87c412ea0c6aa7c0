// Package assets holds the word lists compiled into the binaries.
package assets

import (
	"embed"

	"github.com/mcoot/wordscramble/internal/wordlist"
)

//go:embed start.txt en.txt
var FS embed.FS

// StartWordsFile is the built-in root word list
const StartWordsFile = "start.txt"

// DictionaryFile returns the built-in dictionary file for a base language,
// and false when none is bundled.
func DictionaryFile(base string) (string, bool) {
	if base == "en" {
		return "en.txt", true
	}
	return "", false
}

// ReadWords returns the normalized words of an embedded list
func ReadWords(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return wordlist.Read(f)
}
