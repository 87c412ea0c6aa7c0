package factory

import (
	"time"

	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/dependencies/mocks"
	"github.com/mcoot/wordscramble/internal/services/validation"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	"github.com/mcoot/wordscramble/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(validation.DefaultConfig())
}

// NewTestAppWithConfig is NewTestApp with a specific validator configuration
func NewTestAppWithConfig(cfg validation.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, cfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestRootWords are the root words loaded by LoadTestWords, in pick order
var TestRootWords = []string{"silkworm", "absolute"}

// LoadTestWords loads a small root list and a dictionary of words that can
// be made from its roots
func (t *TestApp) LoadTestWords() error {
	if err := t.WordSource.LoadWords(TestRootWords); err != nil {
		return err
	}
	words := []string{
		// from silkworm
		"worm", "worms", "work", "works", "silk", "milk", "skim", "slim", "swim",
		"slow", "lows", "owls", "rows", "mows", "soil", "roil", "moil", "kilo",
		"kilos", "limo", "risk", "smirk", "mils", "rims", "silkworm",
		// from absolute
		"absolute", "lobes", "bolts", "blots", "stable", "tables", "bleats",
		"solute", "lotus", "louts", "boast", "boats", "about", "soul",
		"lost", "slot", "lots", "tabs", "bats", "stub", "tubs", "lube",
		// too short to ever score
		"ow", "so", "is", "oil", "sow",
	}
	return t.DictionaryService.LoadWords(language.English, words)
}
