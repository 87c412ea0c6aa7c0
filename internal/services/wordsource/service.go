package wordsource

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/wordscramble/internal/assets"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage"
	"github.com/mcoot/wordscramble/internal/wordlist"
)

// Service holds the list of candidate root words and picks from it
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu    sync.RWMutex
	words []string
}

// New creates a new word source
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// LoadFromFile loads root words from a newline-delimited file.
// An unreadable file yields ErrWordListUnavailable, a file with no words
// ErrWordListEmpty.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	words, err := wordlist.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrWordListUnavailable, err)
	}
	if err := s.loadAndSave(ctx, words); err != nil {
		return err
	}

	s.logger.Info("root words loaded",
		slog.String("source", path),
		slog.Int("count", len(words)),
	)
	return nil
}

// LoadDefault loads the root word list bundled with the binary
func (s *Service) LoadDefault(ctx context.Context) error {
	words, err := assets.ReadWords(assets.StartWordsFile)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrWordListUnavailable, err)
	}
	if err := s.loadAndSave(ctx, words); err != nil {
		return err
	}

	s.logger.Info("root words loaded",
		slog.String("source", "builtin"),
		slog.Int("count", len(words)),
	)
	return nil
}

// LoadFromStorage loads a root word list previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetStartWords(ctx)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		if n := wordlist.Normalize(w); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return model.ErrWordListEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = normalized
	return nil
}

func (s *Service) loadAndSave(ctx context.Context, words []string) error {
	if err := s.LoadWords(words); err != nil {
		return err
	}
	// Save to storage so other instances can load without the file
	return s.storage.SaveStartWords(ctx, words)
}

// Pick returns a root word chosen uniformly at random
func (s *Service) Pick() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.words) == 0 {
		return "", model.ErrWordListEmpty
	}
	return s.words[s.random.Intn(len(s.words))], nil
}

// Count returns the number of loaded root words
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
