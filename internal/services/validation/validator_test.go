package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/scoring"
)

// fakeChecker knows a fixed set of words per language
type fakeChecker struct {
	words map[language.Tag]map[string]bool
	calls []string
}

func newFakeChecker(lang language.Tag, words ...string) *fakeChecker {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return &fakeChecker{words: map[language.Tag]map[string]bool{lang: set}}
}

func (c *fakeChecker) IsMisspelled(word string, lang language.Tag) bool {
	c.calls = append(c.calls, word)
	return !c.words[lang][word]
}

type ValidatorSuite struct {
	suite.Suite
	checker   *fakeChecker
	validator *Validator
	state     model.GameState
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.checker = newFakeChecker(language.English,
		"worm", "worms", "silk", "milk", "skim", "wilks", "wormss", "slow", "mils")
	s.validator = New(s.checker, DefaultConfig())
	s.state = model.NewGameState("silkworm")
}

func (s *ValidatorSuite) requireRejection(err error, reason model.RejectionReason) {
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrRejected)

	var rejection *model.RejectionError
	s.Require().ErrorAs(err, &rejection)
	s.Equal(reason, rejection.Reason)
	s.NotEmpty(rejection.Title)
	s.NotEmpty(rejection.Message)
}

// Defaults

func (s *ValidatorSuite) TestDefaults() {
	v := New(s.checker, Config{})
	s.Equal(language.English, v.Language())
	s.Equal(scoring.RawLength, v.Scoring())
}

// MinLength

func (s *ValidatorSuite) TestTooShort() {
	for _, candidate := range []string{"", "w", "wo", "wor", "  MIL  ", "\tsil\n"} {
		_, err := s.validator.Submit(s.state, candidate)
		s.requireRejection(err, model.RejectTooShort)
	}
}

func (s *ValidatorSuite) TestFourLettersIsLongEnough() {
	next, err := s.validator.Submit(s.state, "silk")
	s.Require().NoError(err)
	s.Equal([]string{"silk"}, next.Words)
}

func (s *ValidatorSuite) TestLengthCountsCharactersNotBytes() {
	state := model.NewGameState("éclairs")
	checker := newFakeChecker(language.English, "éclr")
	v := New(checker, DefaultConfig())

	// 3 characters but 4 bytes
	_, err := v.Submit(state, "écl")
	s.requireRejection(err, model.RejectTooShort)

	_, err = v.Submit(state, "éclr")
	s.Require().NoError(err)
}

// NotRoot

func (s *ValidatorSuite) TestSameAsRoot() {
	for _, candidate := range []string{"silkworm", "SILKWORM", "  SilkWorm\n"} {
		_, err := s.validator.Submit(s.state, candidate)
		s.requireRejection(err, model.RejectSameAsRoot)
	}
}

// NotRepeated

func (s *ValidatorSuite) TestAlreadyUsed() {
	state, err := s.validator.Submit(s.state, "worms")
	s.Require().NoError(err)

	_, err = s.validator.Submit(state, "worms")
	s.requireRejection(err, model.RejectAlreadyUsed)

	_, err = s.validator.Submit(state, " WORMS ")
	s.requireRejection(err, model.RejectAlreadyUsed)
}

func (s *ValidatorSuite) TestAlreadyUsedWinsOverOtherRules() {
	// A history entry that would fail later rules still reports AlreadyUsed
	state := model.GameState{Root: "silkworm", Words: []string{"zzzz"}}

	_, err := s.validator.Submit(state, "zzzz")
	s.requireRejection(err, model.RejectAlreadyUsed)
}

// Composable

func (s *ValidatorSuite) TestNotDerivable() {
	for _, candidate := range []string{"wormss", "apple", "silkk", "milky"} {
		_, err := s.validator.Submit(s.state, candidate)
		s.requireRejection(err, model.RejectNotDerivable)
	}
}

func (s *ValidatorSuite) TestNotDerivableMessageNamesRoot() {
	_, err := s.validator.Submit(s.state, "wormss")

	var rejection *model.RejectionError
	s.Require().ErrorAs(err, &rejection)
	s.Contains(rejection.Message, "'silkworm'")
}

func (s *ValidatorSuite) TestNotDerivableSkipsSpellCheck() {
	_, err := s.validator.Submit(s.state, "wormss")
	s.requireRejection(err, model.RejectNotDerivable)
	s.Empty(s.checker.calls)
}

// RealWord

func (s *ValidatorSuite) TestNotRecognized() {
	_, err := s.validator.Submit(s.state, "klim")
	s.requireRejection(err, model.RejectNotRecognized)
	s.Equal([]string{"klim"}, s.checker.calls)
}

func (s *ValidatorSuite) TestSpellCheckUsesConfiguredLanguage() {
	checker := newFakeChecker(language.French, "mils")
	v := New(checker, Config{Language: language.French})

	_, err := v.Submit(s.state, "mils")
	s.Require().NoError(err)

	_, err = v.Submit(s.state, "worm")
	s.requireRejection(err, model.RejectNotRecognized)
}

// Acceptance and scoring

func (s *ValidatorSuite) TestAcceptWorms() {
	next, err := s.validator.Submit(s.state, "worms")
	s.Require().NoError(err)

	s.Equal("silkworm", next.Root)
	s.Equal([]string{"worms"}, next.Words)
	s.Equal(5, next.Score)
}

func (s *ValidatorSuite) TestAcceptedWordsArePrepended() {
	state, err := s.validator.Submit(s.state, "worms")
	s.Require().NoError(err)
	state, err = s.validator.Submit(state, "silk")
	s.Require().NoError(err)
	state, err = s.validator.Submit(state, "milk")
	s.Require().NoError(err)

	s.Equal([]string{"milk", "silk", "worms"}, state.Words)
	s.Equal(13, state.Score)
}

func (s *ValidatorSuite) TestRawScoringCountsSubmittedText() {
	next, err := s.validator.Submit(s.state, "  Worms ")
	s.Require().NoError(err)

	s.Equal([]string{"worms"}, next.Words)
	s.Equal(8, next.Score)
}

func (s *ValidatorSuite) TestNormalizedScoringCountsValidatedWord() {
	v := New(s.checker, Config{Scoring: scoring.NormalizedLength})

	next, err := v.Submit(s.state, "  Worms ")
	s.Require().NoError(err)

	s.Equal([]string{"worms"}, next.Words)
	s.Equal(5, next.Score)
}

func (s *ValidatorSuite) TestScoringModesAgreeOnCleanInput() {
	raw := New(s.checker, Config{Scoring: scoring.RawLength})
	normalized := New(s.checker, Config{Scoring: scoring.NormalizedLength})

	a, err := raw.Submit(s.state, "worms")
	s.Require().NoError(err)
	b, err := normalized.Submit(s.state, "worms")
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *ValidatorSuite) TestRejectionLeavesStateUntouched() {
	state, _ := s.validator.Submit(s.state, "worms")

	next, err := s.validator.Submit(state, "wormss")
	s.Require().Error(err)
	s.Equal(state, next)
	s.Equal([]string{"worms"}, state.Words)
}

func (s *ValidatorSuite) TestSubmitDoesNotMutateInput() {
	state, _ := s.validator.Submit(s.state, "worms")
	before := append([]string(nil), state.Words...)

	_, err := s.validator.Submit(state, "silk")
	s.Require().NoError(err)
	s.Equal(before, state.Words)
}

func TestIsDerivable(t *testing.T) {
	tests := []struct {
		word string
		root string
		want bool
	}{
		{"worms", "silkworm", true},
		{"wormss", "silkworm", false},
		{"silk", "silkworm", true},
		{"kilos", "silkworm", true},
		{"roll", "silkworm", false},
		{"", "silkworm", true},
		{"a", "", false},
		{"loop", "pool", true},
		{"lopo", "pol", false},
	}
	for _, tt := range tests {
		if got := IsDerivable(tt.word, tt.root); got != tt.want {
			t.Errorf("IsDerivable(%q, %q) = %v; want %v", tt.word, tt.root, got, tt.want)
		}
	}
}
