package memory

import (
	"context"
	"sync"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games           map[model.GameID]*model.Game
	startWords      []string
	dictionaryWords map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:           make(map[model.GameID]*model.Game),
		dictionaryWords: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Root word list operations

func (s *Storage) GetStartWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.startWords == nil {
		return nil, model.ErrWordListEmpty
	}
	return copyWords(s.startWords), nil
}

func (s *Storage) SaveStartWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startWords = copyWords(words)
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, lang string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaryWords[lang]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	return copyWords(words), nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, lang string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords[lang] = copyWords(words)
	return nil
}

// cloneGame copies a game so callers never share the stored word slice
func cloneGame(g *model.Game) *model.Game {
	c := *g
	c.State.Words = copyWords(g.State.Words)
	return &c
}

func copyWords(words []string) []string {
	result := make([]string, len(words))
	copy(result, words)
	return result
}
