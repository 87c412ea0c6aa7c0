package validation

import (
	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/scoring"
	"github.com/mcoot/wordscramble/internal/wordlist"
)

// ShortestWordLength is the minimum accepted word length in characters
const ShortestWordLength = 4

// SpellChecker reports whether a normalized word is misspelled in a language
type SpellChecker interface {
	IsMisspelled(word string, lang language.Tag) bool
}

// Config holds validator settings
type Config struct {
	Language language.Tag
	Scoring  scoring.Mode
}

// DefaultConfig checks English spelling and scores raw length
func DefaultConfig() Config {
	return Config{
		Language: language.English,
		Scoring:  scoring.RawLength,
	}
}

// Validator applies the word rules to candidates and scores accepted words
type Validator struct {
	checker  SpellChecker
	language language.Tag
	scorer   *scoring.Service
}

// New creates a Validator; zero Config fields take their defaults
func New(checker SpellChecker, cfg Config) *Validator {
	def := DefaultConfig()
	if cfg.Language == language.Und {
		cfg.Language = def.Language
	}
	return &Validator{
		checker:  checker,
		language: cfg.Language,
		scorer:   scoring.New(cfg.Scoring),
	}
}

// Language returns the spelling language
func (v *Validator) Language() language.Tag {
	return v.language
}

// Scoring returns the scoring mode
func (v *Validator) Scoring() scoring.Mode {
	return v.scorer.Mode()
}

// Submit validates candidate against state and returns the next state.
// The first failing rule is returned as a *model.RejectionError and state is
// left as it was.
func (v *Validator) Submit(state model.GameState, candidate string) (model.GameState, error) {
	answer := Normalize(candidate)

	if err := v.Check(state, answer); err != nil {
		return state, err
	}

	return state.WithWord(answer, v.scorer.Score(candidate, answer)), nil
}

// Check runs the rules in order against an already normalized word
func (v *Validator) Check(state model.GameState, answer string) error {
	switch {
	case Length(answer) < ShortestWordLength:
		return model.NewRejection(model.RejectTooShort, state.Root)
	case answer == state.Root:
		return model.NewRejection(model.RejectSameAsRoot, state.Root)
	case state.HasWord(answer):
		return model.NewRejection(model.RejectAlreadyUsed, state.Root)
	case !IsDerivable(answer, state.Root):
		return model.NewRejection(model.RejectNotDerivable, state.Root)
	case v.checker.IsMisspelled(answer, v.language):
		return model.NewRejection(model.RejectNotRecognized, state.Root)
	}
	return nil
}

// Normalize lowercases and trims a candidate
func Normalize(candidate string) string {
	return wordlist.Normalize(candidate)
}

// Length counts characters
func Length(s string) int {
	return wordlist.Length(s)
}

// IsDerivable reports whether word can be spelled from root's letters, each
// letter of root used at most once.
func IsDerivable(word, root string) bool {
	available := make(map[rune]int, len(root))
	for _, r := range root {
		available[r]++
	}
	for _, r := range word {
		if available[r] == 0 {
			return false
		}
		available[r]--
	}
	return true
}
