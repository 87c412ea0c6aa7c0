package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/assets"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage"
	"github.com/mcoot/wordscramble/internal/wordlist"
)

// Service is the spelling checker: per-language sets of known words.
// Lookups for a tag fall back to the closest loaded language (en-GB uses
// en); a language with no match treats every word as misspelled.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	words   map[language.Tag]map[string]struct{}
	tags    []language.Tag
	matcher language.Matcher
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[language.Tag]map[string]struct{}),
	}
}

// LoadFromStorage loads the dictionary for lang from storage
func (s *Service) LoadFromStorage(ctx context.Context, lang language.Tag) error {
	words, err := s.storage.GetDictionaryWords(ctx, lang.String())
	if err != nil {
		return err
	}
	return s.LoadWords(lang, words)
}

// LoadFromFile loads the dictionary for lang from a file (one word per line)
// and saves it to storage
func (s *Service) LoadFromFile(ctx context.Context, lang language.Tag, path string) error {
	words, err := wordlist.ReadFile(path)
	if err != nil {
		return err
	}
	if err := s.loadAndSave(ctx, lang, words); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.String("language", lang.String()),
		slog.String("source", path),
		slog.Int("count", len(words)),
	)
	return nil
}

// LoadDefault loads the dictionary bundled for lang's base language
func (s *Service) LoadDefault(ctx context.Context, lang language.Tag) error {
	base, _ := lang.Base()
	name, ok := assets.DictionaryFile(base.String())
	if !ok {
		return fmt.Errorf("%w: no built-in dictionary for %s", model.ErrDictionaryNotLoaded, lang)
	}
	words, err := assets.ReadWords(name)
	if err != nil {
		return err
	}
	if err := s.loadAndSave(ctx, lang, words); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.String("language", lang.String()),
		slog.String("source", "builtin"),
		slog.Int("count", len(words)),
	)
	return nil
}

func (s *Service) loadAndSave(ctx context.Context, lang language.Tag, words []string) error {
	if err := s.LoadWords(lang, words); err != nil {
		return err
	}
	// Save to storage for future use
	return s.storage.SaveDictionaryWords(ctx, lang.String(), words)
}

// LoadWords directly loads a slice of words for lang (useful for testing)
func (s *Service) LoadWords(lang language.Tag, words []string) error {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if w := wordlist.Normalize(word); w != "" {
			set[w] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[lang]; !ok {
		s.tags = append(s.tags, lang)
		s.matcher = language.NewMatcher(s.tags)
	}
	s.words[lang] = set
	return nil
}

// IsMisspelled reports whether word is unknown in lang's dictionary
func (s *Service) IsMisspelled(word string, lang language.Tag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.lookup(lang)
	if set == nil {
		return true
	}
	_, ok := set[wordlist.Normalize(word)]
	return !ok
}

// IsValidWord is the inverse of IsMisspelled
func (s *Service) IsValidWord(word string, lang language.Tag) bool {
	return !s.IsMisspelled(word, lang)
}

// lookup must be called with s.mu held
func (s *Service) lookup(lang language.Tag) map[string]struct{} {
	if set, ok := s.words[lang]; ok {
		return set
	}
	if s.matcher == nil {
		return nil
	}
	_, idx, conf := s.matcher.Match(lang)
	if conf == language.No {
		return nil
	}
	return s.words[s.tags[idx]]
}

// IsLoaded returns whether a dictionary matching lang has been loaded
func (s *Service) IsLoaded(lang language.Tag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(lang) != nil
}

// WordCount returns the number of words in the dictionary matching lang
func (s *Service) WordCount(lang language.Tag) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lookup(lang))
}

// Languages returns the loaded languages in load order
func (s *Service) Languages() []language.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]language.Tag, len(s.tags))
	copy(result, s.tags)
	return result
}

// Interface check
type ServiceInterface interface {
	IsMisspelled(word string, lang language.Tag) bool
	IsValidWord(word string, lang language.Tag) bool
	IsLoaded(lang language.Tag) bool
	WordCount(lang language.Tag) int
	Languages() []language.Tag
	LoadFromStorage(ctx context.Context, lang language.Tag) error
	LoadFromFile(ctx context.Context, lang language.Tag, path string) error
	LoadDefault(ctx context.Context, lang language.Tag) error
	LoadWords(lang language.Tag, words []string) error
}

var _ ServiceInterface = (*Service)(nil)
