package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	GameID    string
	GameFile  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDSCRAMBLE_SERVER", "http://localhost:8080"),
		GameID:    os.Getenv("WORDSCRAMBLE_GAME"),
		GameFile:  getEnvOrDefault("WORDSCRAMBLE_GAME_FILE", defaultGameFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadGameID loads the current game ID from file if not already set
func (c *Config) LoadGameID() error {
	if c.GameID != "" {
		return nil
	}

	data, err := os.ReadFile(c.GameFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // No current game is fine
		}
		return err
	}

	c.GameID = strings.TrimSpace(string(data))
	return nil
}

// SaveGameID records id as the current game
func (c *Config) SaveGameID(id string) error {
	c.GameID = id

	dir := filepath.Dir(c.GameFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.GameFile, []byte(id), 0600)
}

// ClearGameID forgets the current game if it is id
func (c *Config) ClearGameID(id string) error {
	if c.GameID != id {
		return nil
	}
	c.GameID = ""
	if err := os.Remove(c.GameFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ResolveGameID returns the game ID from args, falling back to the current game
func (c *Config) ResolveGameID(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if c.GameID == "" {
		return "", errors.New("no game ID given and no current game; run 'game new' first")
	}
	return c.GameID, nil
}

func defaultGameFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordscramble/game"
	}
	return filepath.Join(home, ".wordscramble", "game")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
