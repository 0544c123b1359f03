package player

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// DefaultPromotion is applied to a pawn move reaching the last rank when
// the strategy leaves the promotion type unset.
const DefaultPromotion = chess.Queen

// Player is one side of a game: a colour, the direction its pawns advance
// and the strategy that picks its moves.
type Player struct {
	Name      string
	Colour    chess.Colour
	Direction int

	strategy Strategy
}

// New creates a player for side using strategy s.
func New(name string, side chess.Side, s Strategy) *Player {
	return &Player{
		Name:      name,
		Colour:    side.Colour,
		Direction: side.Direction,
		strategy:  s,
	}
}

// Side returns the colour and direction of the player.
func (p *Player) Side() chess.Side {
	return chess.Side{Colour: p.Colour, Direction: p.Direction}
}

// ProposeMove asks the strategy for a move on b, filling in the default
// promotion when a pawn reaches the last rank without one.
func (p *Player) ProposeMove(b *engine.Board) chess.Move {
	m := p.strategy.NextMove(b)
	if m.IsValid() && !m.IsPromotion() && b.NeedsPromotion(m) {
		m = m.WithPromotion(DefaultPromotion)
	}
	return m
}

// String returns the player's name and colour.
func (p *Player) String() string {
	if p.Name == "" {
		return p.Colour.String()
	}
	return p.Name + " (" + p.Colour.String() + ")"
}
