package redis

import (
	"fmt"

	"github.com/mcoot/wordscramble/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordscramble"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// startWordsKey returns the Redis key for the root word LIST
func startWordsKey() string {
	return fmt.Sprintf("%s:start_words", keyPrefix)
}

// dictionaryKey returns the Redis key for a language's dictionary word SET
func dictionaryKey(lang string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, lang)
}
