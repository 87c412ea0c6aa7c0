package storage

import (
	"context"

	"github.com/mcoot/wordscramble/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Root word list operations
	GetStartWords(ctx context.Context) ([]string, error)
	SaveStartWords(ctx context.Context, words []string) error

	// Dictionary operations, keyed by BCP 47 language tag
	GetDictionaryWords(ctx context.Context, lang string) ([]string, error)
	SaveDictionaryWords(ctx context.Context, lang string, words []string) error
}
