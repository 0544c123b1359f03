// Package game drives a board between two players, one turn at a time.
package game

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/player"
)

// Hook is notified at a turn boundary. It carries no payload; hooks that
// need the position read it from the game.
type Hook func()

// TurnResult describes one completed turn.
type TurnResult struct {
	Move     chess.Move
	Turn     int // board turn the move was played on
	State    chess.GameState
	Duration time.Duration
	Continue bool // false once the game has ended
}

// Game owns a board and the two players taking turns on it.
type Game struct {
	ID string

	board   *engine.Board
	players [chess.NumColours]*player.Player

	beforeMove []Hook
	afterMove  []Hook

	history  []chess.Move
	lastTurn time.Duration
}

// New starts a game from the initial position. first moves first; its
// direction decides which back rank it starts on.
func New(first, second *player.Player) (*Game, error) {
	if first.Colour == second.Colour {
		return nil, fmt.Errorf("both players are %s: %w", first.Colour, errors.ErrInvalidConfig)
	}
	b := engine.NewBoardWithSides([chess.NumColours]chess.Side{first.Side(), second.Side()})
	return newGame(b, first, second), nil
}

// NewFromBoard continues play on an existing board, for example one built
// from a FEN string. Players are matched to the board by colour.
func NewFromBoard(b *engine.Board, white, black *player.Player) (*Game, error) {
	if white.Colour != chess.White || black.Colour != chess.Black {
		return nil, fmt.Errorf("players are %s and %s: %w", white.Colour, black.Colour, errors.ErrInvalidConfig)
	}
	return newGame(b, white, black), nil
}

func newGame(b *engine.Board, a, c *player.Player) *Game {
	g := &Game{
		ID:    uuid.New().String(),
		board: b,
	}
	g.players[a.Colour] = a
	g.players[c.Colour] = c
	return g
}

// OnBeforeMove registers a hook fired before the active player is asked
// for a move.
func (g *Game) OnBeforeMove(h Hook) {
	g.beforeMove = append(g.beforeMove, h)
}

// OnAfterMove registers a hook fired after a move has been executed.
func (g *Game) OnAfterMove(h Hook) {
	g.afterMove = append(g.afterMove, h)
}

// Board returns the game's board. Callers must not execute moves on it.
func (g *Game) Board() *engine.Board { return g.board }

// State returns the current game state.
func (g *Game) State() chess.GameState { return g.board.State() }

// Player returns the player of colour c.
func (g *Game) Player(c chess.Colour) *player.Player { return g.players[c] }

// ActivePlayer returns the player whose turn it is.
func (g *Game) ActivePlayer() *player.Player {
	return g.players[g.board.ActiveColour()]
}

// History returns the moves played so far.
func (g *Game) History() []chess.Move { return slices.Clone(g.history) }

// Plies returns the number of moves played.
func (g *Game) Plies() int { return len(g.history) }

// LastTurnDuration returns the wall time the most recent turn took,
// including the strategy's thinking time.
func (g *Game) LastTurnDuration() time.Duration { return g.lastTurn }

// TakeTurn plays a single turn: before-move hooks, the active player's
// proposal, execution, after-move hooks. A proposal is checked against the
// legal moves and the generated move is executed with the proposal's
// promotion type. Calling TakeTurn on a finished game returns a result
// with Continue false and does nothing.
func (g *Game) TakeTurn() (TurnResult, error) {
	state := g.board.State()
	if !state.InProgress() {
		return TurnResult{Move: chess.NoMove, Turn: g.board.Turn(), State: state}, nil
	}

	start := time.Now()
	turn := g.board.Turn()
	fire(g.beforeMove)

	proposed := g.ActivePlayer().ProposeMove(g.board)
	if !proposed.IsValid() {
		return TurnResult{}, g.wrap(errors.ErrNoMove, turn, "")
	}
	m, ok := g.board.IsLegal(proposed)
	if !ok {
		return TurnResult{}, g.wrap(errors.ErrIllegalMove, turn, proposed.String())
	}
	if proposed.IsPromotion() {
		m = m.WithPromotion(proposed.Promotion)
	}
	if err := g.board.Execute(m); err != nil {
		return TurnResult{}, g.wrap(err, turn, m.String())
	}
	g.history = append(g.history, m)

	fire(g.afterMove)
	g.lastTurn = time.Since(start)

	state = g.board.State()
	return TurnResult{
		Move:     m,
		Turn:     turn,
		State:    state,
		Duration: g.lastTurn,
		Continue: state.InProgress(),
	}, nil
}

// AutoPlay takes turns until the game ends, a turn fails, or ctx is done.
func (g *Game) AutoPlay(ctx context.Context) error {
	for g.board.State().InProgress() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.TakeTurn(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) wrap(err error, turn int, move string) error {
	return &errors.GameError{Err: err, GameID: g.ID, Ply: turn, Move: move}
}

func fire(hooks []Hook) {
	for _, h := range hooks {
		h()
	}
}
