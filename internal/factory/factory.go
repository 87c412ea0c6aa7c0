package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/dependencies/clock"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/game"
	"github.com/mcoot/wordscramble/internal/services/scoring"
	"github.com/mcoot/wordscramble/internal/services/validation"
	"github.com/mcoot/wordscramble/internal/services/wordsource"
	"github.com/mcoot/wordscramble/internal/storage"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	redisstorage "github.com/mcoot/wordscramble/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordSource        *wordsource.Service
	DictionaryService *dictionary.Service
	Validator         *validation.Validator
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// StartWordsPath is the root word list file (optional)
	// If empty, the built-in list is used
	StartWordsPath string
	// DictionaryPath is the spelling dictionary file (optional)
	// If empty, the built-in dictionary for Language is used
	DictionaryPath string
	// Language is the spelling language; zero means English
	Language language.Tag
	// Scoring selects raw or normalized length scoring; empty means raw
	Scoring scoring.Mode
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired.
// Word lists are not loaded; call LoadWordLists before serving.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	validatorCfg := validation.Config{Language: cfg.Language, Scoring: cfg.Scoring}
	return newWithDependencies(store, clock.New(), random.New(), validatorCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, validatorCfg validation.Config, logger *slog.Logger) *App {
	words := wordsource.New(store, rnd, logger)
	dict := dictionary.New(store, logger)
	validator := validation.New(dict, validatorCfg)
	controller := game.NewController(store, words, validator, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordSource:        words,
		DictionaryService: dict,
		Validator:         validator,
		GameController:    controller,
	}
}

// LoadWordLists loads the root word list and the dictionary for the
// validator's language. Empty paths select the built-in lists. Failures are
// returned as ErrWordListUnavailable, ErrWordListEmpty or
// ErrDictionaryNotLoaded.
func (a *App) LoadWordLists(ctx context.Context, startWordsPath, dictionaryPath string) error {
	var err error
	if startWordsPath == "" {
		err = a.WordSource.LoadDefault(ctx)
	} else {
		err = a.WordSource.LoadFromFile(ctx, startWordsPath)
	}
	if err != nil {
		return fmt.Errorf("load root words: %w", err)
	}

	lang := a.Validator.Language()
	if dictionaryPath == "" {
		err = a.DictionaryService.LoadDefault(ctx, lang)
	} else {
		err = a.DictionaryService.LoadFromFile(ctx, lang, dictionaryPath)
	}
	if err != nil {
		if errors.Is(err, model.ErrDictionaryNotLoaded) {
			return err
		}
		return fmt.Errorf("%w: %w", model.ErrDictionaryNotLoaded, err)
	}
	return nil
}

// Close releases storage resources
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
