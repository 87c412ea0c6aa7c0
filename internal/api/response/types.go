package response

import (
	"time"

	"github.com/mcoot/wordscramble/internal/model"
)

// Word is an accepted word and the points shown beside it
type Word struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// Game represents a game in API responses
type Game struct {
	ID        string    `json:"id"`
	RootWord  string    `json:"root_word"`
	Words     []Word    `json:"words"`
	Score     int       `json:"score"`
	Language  string    `json:"language"`
	Restarts  int       `json:"restarts"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameFromModel converts model.Game to a response Game.
// Words keep the most-recent-first order.
func GameFromModel(g *model.Game) Game {
	words := make([]Word, len(g.State.Words))
	for i, w := range g.State.Words {
		words[i] = Word{Word: w, Points: model.WordPoints(w)}
	}
	return Game{
		ID:        string(g.ID),
		RootWord:  g.State.Root,
		Words:     words,
		Score:     g.State.Score,
		Language:  g.Language,
		Restarts:  g.Restarts,
		UpdatedAt: g.UpdatedAt,
	}
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
