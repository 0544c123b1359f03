// Package engine provides the chess rules engine: board state, legal move
// generation, move execution and terminal-state detection.
package engine

import (
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 50

// square is one cell of the derived occupancy grid.
type square struct {
	occupant int // roster index, or -1
	attacked bool
}

// Board is the authoritative game state. The piece roster is the single
// source of truth; the square grid is a cache rebuilt from it on every
// refresh.
type Board struct {
	sides  [chess.NumColours]chess.Side
	pieces []Piece

	// squares[x][y]
	squares [chess.BoardSize][chess.BoardSize]square

	turn      int
	halfMoves int
	castling  chess.CastlingRights
	state     chess.GameState

	// clone marks a speculative copy: it skips the self-check filter, the
	// draw and checkmate classification, and never advances the turn.
	clone bool

	legal      []chess.Move
	legalValid bool
}

// NewBoard creates a board in the standard starting position with White
// moving first.
func NewBoard() *Board {
	return NewBoardWithSides(chess.StandardSides)
}

// NewBoardWithSides creates a board in the starting position for the given
// players. sides[0] moves first; each side's back rank is chosen by its
// direction.
func NewBoardWithSides(sides [chess.NumColours]chess.Side) *Board {
	b := newEmptyBoard(sides)
	b.Reset()
	return b
}

func newEmptyBoard(sides [chess.NumColours]chess.Side) *Board {
	b := &Board{
		sides:  sides,
		pieces: make([]Piece, 0, 32),
		turn:   1,
		state:  chess.Playing,
	}
	b.clearSquares()
	return b
}

// Reset restores the starting position.
func (b *Board) Reset() {
	b.turn = 1
	b.halfMoves = 0
	b.state = chess.Playing
	b.castling = chess.AllCastling
	b.pieces = b.pieces[:0]
	for _, side := range b.sides {
		b.resetSidePieces(side)
	}
	b.refresh()
}

func (b *Board) resetSidePieces(side chess.Side) {
	y := side.BaseRank()

	b.pieces = append(b.pieces,
		newPiece(side, chess.King, 0, chess.C(4, y)),
		newPiece(side, chess.Queen, 0, chess.C(3, y)),
		newPiece(side, chess.Bishop, 1, chess.C(2, y)),
		newPiece(side, chess.Bishop, 2, chess.C(5, y)),
		newPiece(side, chess.Knight, 1, chess.C(1, y)),
		newPiece(side, chess.Knight, 2, chess.C(6, y)),
		newPiece(side, chess.Rook, 1, chess.C(0, y)),
		newPiece(side, chess.Rook, 2, chess.C(7, y)),
	)
	for x := 0; x < chess.BoardSize; x++ {
		b.pieces = append(b.pieces, newPiece(side, chess.Pawn, x+1, chess.C(x, y+side.Direction)))
	}
}

// place appends a piece to the roster, numbering it after the pieces of
// the same colour and type already present. Used when building positions
// from FEN or snapshots; the caller refreshes afterwards.
func (b *Board) place(colour chess.Colour, kind chess.PieceType, at chess.Coord) *Piece {
	number := 0
	for _, p := range b.pieces {
		if p.colour == colour && p.kind == kind {
			number++
		}
	}
	if kind != chess.King && kind != chess.Queen {
		number++
	}
	b.pieces = append(b.pieces, newPiece(b.Side(colour), kind, number, at))
	return &b.pieces[len(b.pieces)-1]
}

// Clone returns a deep, independent speculative copy of the board.
// Mutating the clone never affects b.
func (b *Board) Clone() *Board {
	c := &Board{
		sides:     b.sides,
		pieces:    slices.Clone(b.pieces),
		squares:   b.squares,
		turn:      b.turn,
		halfMoves: b.halfMoves,
		castling:  b.castling,
		state:     b.state,
		clone:     true,
	}
	return c
}

// TestMove executes m on a speculative clone and returns the clone.
func (b *Board) TestMove(m chess.Move) (*Board, error) {
	c := b.Clone()
	if err := c.Execute(m); err != nil {
		return nil, err
	}
	return c, nil
}

// IsClone reports whether the board is a speculative copy.
func (b *Board) IsClone() bool { return b.clone }

// Turn returns the turn counter. It starts at 1.
func (b *Board) Turn() int { return b.turn }

// FullMoves returns the full-move count, turn / 2.
func (b *Board) FullMoves() int { return b.turn / 2 }

// HalfMoveClock returns the number of half-moves since the last pawn move
// or capture.
func (b *Board) HalfMoveClock() int { return b.halfMoves }

// Castling returns the castling-rights flags.
func (b *Board) Castling() chess.CastlingRights { return b.castling }

// State returns the current game state.
func (b *Board) State() chess.GameState { return b.state }

// Sides returns the two sides in player order.
func (b *Board) Sides() [chess.NumColours]chess.Side { return b.sides }

// Side returns the side playing the given colour.
func (b *Board) Side(c chess.Colour) chess.Side {
	if b.sides[0].Colour == c {
		return b.sides[0]
	}
	return b.sides[1]
}

// ActiveSide returns the side whose turn it is.
func (b *Board) ActiveSide() chess.Side {
	return b.sides[(b.turn+1)%2]
}

// ActiveColour returns the colour whose turn it is.
func (b *Board) ActiveColour() chess.Colour {
	return b.ActiveSide().Colour
}

// Pieces returns a copy of the full roster, captured pieces included.
func (b *Board) Pieces() []Piece {
	return slices.Clone(b.pieces)
}

// ActivePieces returns the pieces still on the board.
func (b *Board) ActivePieces() []Piece {
	var out []Piece
	for _, p := range b.pieces {
		if p.IsOnBoard() {
			out = append(out, p)
		}
	}
	return out
}

// PieceAt returns the piece on c, if any.
func (b *Board) PieceAt(c chess.Coord) (Piece, bool) {
	i := b.occupant(c)
	if i < 0 {
		return Piece{}, false
	}
	return b.pieces[i], true
}

// IsOccupied reports whether a piece stands on c.
func (b *Board) IsOccupied(c chess.Coord) bool {
	return b.occupant(c) >= 0
}

// IsUnderAttack reports whether c was reached by one of the opponent's
// attacking moves during the last refresh.
func (b *Board) IsUnderAttack(c chess.Coord) bool {
	if !c.OnBoard() {
		return false
	}
	return b.squares[c.X][c.Y].attacked
}

// King returns the active king of the given colour.
func (b *Board) King(c chess.Colour) (Piece, bool) {
	for _, p := range b.pieces {
		if p.kind == chess.King && p.colour == c && p.IsOnBoard() {
			return p, true
		}
	}
	return Piece{}, false
}

// occupant returns the roster index of the piece on c, or -1.
func (b *Board) occupant(c chess.Coord) int {
	if !c.OnBoard() {
		return -1
	}
	return b.squares[c.X][c.Y].occupant
}

// colourAt returns the colour of the piece on c and whether there is one.
func (b *Board) colourAt(c chess.Coord) (chess.Colour, bool) {
	i := b.occupant(c)
	if i < 0 {
		return 0, false
	}
	return b.pieces[i].colour, true
}

func (b *Board) clearSquares() {
	for x := range chess.BoardSize {
		for y := range chess.BoardSize {
			b.squares[x][y] = square{occupant: -1}
		}
	}
}

// rebuildGrid recomputes the occupancy grid from the roster.
func (b *Board) rebuildGrid() {
	b.clearSquares()
	for i, p := range b.pieces {
		if p.IsOnBoard() {
			b.squares[p.loc.X][p.loc.Y].occupant = i
		}
	}
}
