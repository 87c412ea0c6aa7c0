package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/services/scoring"
)

// EnvPrefix is prepended to every server environment variable
const EnvPrefix = "WORDSCRAMBLE_"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config is the server configuration read from the environment
type Config struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	Storage  string        `env:"STORAGE" envDefault:"memory"`
	RedisURL string        `env:"REDIS_URL"`
	GameTTL  time.Duration `env:"GAME_TTL" envDefault:"24h"`

	// Empty paths fall back to the lists built into the binary
	StartWordsPath string `env:"START_WORDS"`
	DictionaryPath string `env:"DICTIONARY"`

	Language string `env:"LANGUAGE" envDefault:"en"`
	Scoring  string `env:"SCORING" envDefault:"raw"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment. Keys include the prefix.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express
func (c Config) Validate() error {
	var errs []error

	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New(EnvPrefix+"REDIS_URL required when storage is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid storage %q: must be 'memory' or 'redis'", c.Storage))
	}

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if _, err := c.LanguageTag(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ScoringMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LanguageTag parses the spelling language
func (c Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	return tag, nil
}

// ScoringMode parses the scoring mode
func (c Config) ScoringMode() (scoring.Mode, error) {
	return scoring.ParseMode(c.Scoring)
}

// SlogLevel parses the log level (debug, info, warn, error)
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
