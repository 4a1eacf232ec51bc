package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds the settings for a local match
type Config struct {
	PlayerA     string        `env:"PYRAMID_PLAYER_A"`
	PlayerB     string        `env:"PYRAMID_PLAYER_B"`
	Seed        int64         `env:"PYRAMID_SEED"`
	LogLevel    string        `env:"PYRAMID_LOG_LEVEL"`
	LogJSON     bool          `env:"PYRAMID_LOG_JSON"`
	TurnTimeout time.Duration `env:"PYRAMID_TURN_TIMEOUT"`
}

// Default returns the settings used when nothing is configured.
// A zero Seed means a time-seeded shuffle.
func Default() Config {
	return Config{
		PlayerA:     "Player A",
		PlayerB:     "Player B",
		LogLevel:    "warn",
		TurnTimeout: 5 * time.Minute,
	}
}

// Load reads the given .env files, skipping any that don't exist,
// then overlays PYRAMID_* environment variables on the defaults.
// Variables already set in the environment win over .env files.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	ErrMissingPlayerName = errors.New("both players need a name")
	ErrSamePlayerNames   = errors.New("players need different names")
	ErrBadTurnTimeout    = errors.New("turn timeout must be positive")
)

// Validate checks the settings make a playable match
func (c Config) Validate() error {
	if c.PlayerA == "" || c.PlayerB == "" {
		return ErrMissingPlayerName
	}
	if c.PlayerA == c.PlayerB {
		return ErrSamePlayerNames
	}
	if c.TurnTimeout <= 0 {
		return ErrBadTurnTimeout
	}
	return nil
}
