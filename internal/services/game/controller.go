package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/wordscramble/internal/dependencies/clock"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/validation"
	"github.com/mcoot/wordscramble/internal/storage"
)

const (
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
	// GameIDAlphabet is the characters used in game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// RootPicker supplies root words
type RootPicker interface {
	Pick() (string, error)
}

// Controller manages the game lifecycle: start, submit, restart
type Controller struct {
	storage   storage.Storage
	roots     RootPicker
	validator *validation.Validator
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	// per-game locks so load, validate and save happen as one step
	mu    sync.Mutex
	locks map[model.GameID]*gameLock
}

// gameLock is dropped from the map once no caller holds or waits on it
type gameLock struct {
	sync.Mutex
	refs int
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	roots RootPicker,
	validator *validation.Validator,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		roots:     roots,
		validator: validator,
		clock:     clock,
		random:    random,
		logger:    logger,
		locks:     make(map[model.GameID]*gameLock),
	}
}

// NewGame starts a game with a freshly picked root word
func (c *Controller) NewGame(ctx context.Context) (*model.Game, error) {
	root, err := c.roots.Pick()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		State:     model.NewGameState(root),
		Language:  c.validator.Language().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("root_word", root),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// SubmitWord validates candidate and, if accepted, records it and its
// points. A rejection is returned as *model.RejectionError and the stored
// game is not changed.
func (c *Controller) SubmitWord(ctx context.Context, gameID model.GameID, candidate string) (*model.Game, error) {
	unlock := c.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	next, err := c.validator.Submit(game.State, candidate)
	if err != nil {
		var rejection *model.RejectionError
		if errors.As(err, &rejection) {
			c.logger.Debug("word rejected",
				slog.String("game_id", string(gameID)),
				slog.String("reason", string(rejection.Reason)),
			)
		}
		return nil, err
	}

	game.State = next
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("word accepted",
		slog.String("game_id", string(gameID)),
		slog.String("word", next.Words[0]),
		slog.Int("score", next.Score),
	)

	return game, nil
}

// Restart clears the accepted words and score and picks a new root word
func (c *Controller) Restart(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	unlock := c.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	root, err := c.roots.Pick()
	if err != nil {
		return nil, err
	}

	game.State = model.NewGameState(root)
	game.Restarts++
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game restarted",
		slog.String("game_id", string(gameID)),
		slog.String("root_word", root),
		slog.Int("restarts", game.Restarts),
	)

	return game, nil
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	unlock := c.lock(gameID)
	defer unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

func (c *Controller) lock(gameID model.GameID) func() {
	c.mu.Lock()
	l, ok := c.locks[gameID]
	if !ok {
		l = &gameLock{}
		c.locks[gameID] = l
	}
	l.refs++
	c.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, gameID)
		}
		c.mu.Unlock()
	}
}
