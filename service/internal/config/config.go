// Package config reads duel settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	engine "github.com/jason-s-yu/ygobridge/engine"
)

// Config holds the settings of one duel run.
type Config struct {
	CardDB     string       `env:"YGO_CARD_DB" envDefault:"cards.cdb"`
	Decks      []string     `env:"YGO_DECKS" envSeparator:","`
	Seed       uint32       `env:"YGO_SEED" envDefault:"0"`
	LP         int32        `env:"YGO_LP" envDefault:"8000"`
	StartCount int32        `env:"YGO_START_COUNT" envDefault:"5"`
	DrawCount  int32        `env:"YGO_DRAW_COUNT" envDefault:"1"`
	Options    int32        `env:"YGO_DUEL_OPTIONS" envDefault:"0"`
	LogLevel   logrus.Level `env:"YGO_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. A missing .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: load .env: %v", engine.ErrConfiguration, err)
	}
	return Parse()
}

// LoadFile is Load with an explicit dotenv file, which must exist.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		return Config{}, fmt.Errorf("%w: load %s: %v", engine.ErrConfiguration, path, err)
	}
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %v", engine.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges env tags cannot express.
func (c Config) Validate() error {
	switch {
	case c.LP <= 0:
		return fmt.Errorf("%w: YGO_LP must be positive, got %d", engine.ErrConfiguration, c.LP)
	case c.StartCount < 0 || c.DrawCount < 0:
		return fmt.Errorf("%w: YGO_START_COUNT and YGO_DRAW_COUNT must not be negative", engine.ErrConfiguration)
	case len(c.Decks) > engine.NumPlayers:
		return fmt.Errorf("%w: at most %d decks, got %d", engine.ErrConfiguration, engine.NumPlayers, len(c.Decks))
	}
	return nil
}
