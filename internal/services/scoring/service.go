package scoring

import (
	"fmt"
	"unicode/utf8"
)

// Mode selects which length an accepted word scores
type Mode string

const (
	// RawLength scores the submitted text as typed, surrounding whitespace
	// and all
	RawLength Mode = "raw"
	// NormalizedLength scores the lowercased, trimmed word
	NormalizedLength Mode = "normalized"
)

// ParseMode parses "raw" or "normalized"; empty means raw
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", RawLength:
		return RawLength, nil
	case NormalizedLength:
		return NormalizedLength, nil
	default:
		return "", fmt.Errorf("invalid scoring mode %q: must be 'raw' or 'normalized'", s)
	}
}

// Service scores accepted words
type Service struct {
	mode Mode
}

// New creates a scoring Service; an empty mode scores raw length
func New(mode Mode) *Service {
	if mode == "" {
		mode = RawLength
	}
	return &Service{mode: mode}
}

// Mode returns the scoring mode
func (s *Service) Mode() Mode {
	return s.mode
}

// Score returns the points for an accepted word. submitted is the text as
// the player typed it, word the normalized form that was validated.
func (s *Service) Score(submitted, word string) int {
	if s.mode == NormalizedLength {
		return utf8.RuneCountInString(word)
	}
	return utf8.RuneCountInString(submitted)
}
