package game

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/samdwyer/acidrun/internal/difficulty"
	"github.com/samdwyer/acidrun/internal/terrain"
)

// Session tracks the difficulty tier across consecutive levels.
type Session struct {
	table      *difficulty.Table
	rng        terrain.Rand
	logger     logr.Logger
	difficulty difficulty.Difficulty
}

// NewSession creates a session starting at the easiest tier.
func NewSession(table *difficulty.Table, rng terrain.Rand, logger logr.Logger) *Session {
	return &Session{
		table:  table,
		rng:    rng,
		logger: logger,
	}
}

// Difficulty returns the tier the next level will be built at.
func (s *Session) Difficulty() difficulty.Difficulty {
	return s.difficulty
}

// Start builds a fresh level at the current tier.
func (s *Session) Start(ctx context.Context) (*Level, error) {
	return StartLevel(ctx, s.table, s.difficulty, s.rng, s.logger)
}

// Advance moves to the next tier after a completed level.
func (s *Session) Advance() {
	s.difficulty = s.difficulty.Next()
}

// Reset returns to the easiest tier, e.g. after the astronaut dies.
func (s *Session) Reset() {
	s.difficulty = 0
}
