// Package player binds a side of the board to a move-selection strategy.
package player

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Strategy chooses a move for the side to move. Returning chess.NoMove
// signals that the strategy has no move to offer.
type Strategy interface {
	NextMove(b *engine.Board) chess.Move
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(b *engine.Board) chess.Move

// NextMove calls f(b).
func (f StrategyFunc) NextMove(b *engine.Board) chess.Move {
	return f(b)
}

// RandomStrategy picks uniformly among the legal moves. A pawn move onto
// the last rank gets a promotion type chosen uniformly from
// chess.PromotionTypes. It is not safe for concurrent use.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy with a reproducible seed.
func NewRandomStrategy(seed uint64) *RandomStrategy {
	return &RandomStrategy{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextMove implements Strategy.
func (s *RandomStrategy) NextMove(b *engine.Board) chess.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return chess.NoMove
	}
	m := moves[s.rng.IntN(len(moves))]
	if b.NeedsPromotion(m) {
		m = m.WithPromotion(chess.PromotionTypes[s.rng.IntN(len(chess.PromotionTypes))])
	}
	return m
}

// ScriptedStrategy replays a fixed list of moves, then returns NoMove.
type ScriptedStrategy struct {
	moves []chess.Move
	next  int
}

// NewScriptedStrategy parses coordinate moves such as "e2e4" or "e7e8q".
func NewScriptedStrategy(moves ...string) (*ScriptedStrategy, error) {
	s := &ScriptedStrategy{moves: make([]chess.Move, 0, len(moves))}
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, err
		}
		s.moves = append(s.moves, m)
	}
	return s, nil
}

// NextMove implements Strategy.
func (s *ScriptedStrategy) NextMove(*engine.Board) chess.Move {
	if s.next >= len(s.moves) {
		return chess.NoMove
	}
	m := s.moves[s.next]
	s.next++
	return m
}

// Remaining returns the number of moves not yet played.
func (s *ScriptedStrategy) Remaining() int {
	return len(s.moves) - s.next
}
