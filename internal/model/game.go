package model

import (
	"time"
	"unicode/utf8"
)

// GameID uniquely identifies a game
type GameID string

// GameState is the playable state of one game: the root word, the accepted
// words (most recent first) and the running score.
//
// Transitions return a new GameState; Words of an existing value is never
// modified in place.
type GameState struct {
	Root  string
	Words []string
	Score int
}

// NewGameState returns an empty state for the given root word
func NewGameState(root string) GameState {
	return GameState{
		Root:  root,
		Words: []string{},
		Score: 0,
	}
}

// HasWord reports whether word has already been accepted
func (s GameState) HasWord(word string) bool {
	for _, w := range s.Words {
		if w == word {
			return true
		}
	}
	return false
}

// WithWord returns a copy of the state with word prepended and points added
func (s GameState) WithWord(word string, points int) GameState {
	words := make([]string, 0, len(s.Words)+1)
	words = append(words, word)
	words = append(words, s.Words...)
	return GameState{
		Root:  s.Root,
		Words: words,
		Score: s.Score + points,
	}
}

// WordPoints returns the points shown next to an accepted word
func WordPoints(word string) int {
	return utf8.RuneCountInString(word)
}

// Game is the persisted envelope around a GameState
type Game struct {
	ID       GameID
	State    GameState
	Language string // BCP 47 tag used for the spelling check
	Restarts int

	CreatedAt time.Time
	UpdatedAt time.Time
}
