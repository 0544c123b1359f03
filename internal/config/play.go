package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PlayConfig holds settings for the games themselves.
type PlayConfig struct {
	// Games is the number of games to play.
	Games int

	// MaxPlies stops a game after this many moves (0 = play to the end).
	MaxPlies int

	// Seed drives the random strategies (0 = derive from the clock).
	Seed uint64

	// StartFEN is the position each game starts from (empty = initial).
	StartFEN string

	// Watch plays a single game in the terminal viewer.
	Watch bool

	// Delay is the pause between turns in the viewer.
	Delay time.Duration
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Games: 1,
		Delay: 500 * time.Millisecond,
	}
}

// EffectiveSeed returns Seed, or a clock-derived seed when it is zero.
func (p *PlayConfig) EffectiveSeed() uint64 {
	if p.Seed != 0 {
		return p.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d: %w", p.Games, errors.ErrInvalidConfig)
	}
	if p.MaxPlies < 0 {
		return fmt.Errorf("negative ply limit %d: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	if p.Delay < 0 {
		return fmt.Errorf("negative delay %v: %w", p.Delay, errors.ErrInvalidConfig)
	}
	if p.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(p.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// NewBoard returns the starting board for a game.
func (p *PlayConfig) NewBoard() (*engine.Board, error) {
	if p.StartFEN == "" {
		return engine.NewBoard(), nil
	}
	return engine.NewBoardFromFEN(p.StartFEN)
}
