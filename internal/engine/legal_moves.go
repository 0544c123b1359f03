package engine

import (
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// maxRay is the longest distance a sliding piece can travel.
const maxRay = chess.BoardSize

var (
	diagonalDirs = [][2]int{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}
	straightDirs = [][2]int{{0, 1}, {-1, 0}, {1, 0}, {0, -1}}
	allDirs      = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	knightJumps  = [][2]int{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
)

// LegalMoves returns every legal move of the side to move. On a
// speculative clone the self-check filter is skipped.
func (b *Board) LegalMoves() []chess.Move {
	if !b.legalValid {
		b.legal = b.generateAll()
		b.legalValid = true
	}
	return slices.Clone(b.legal)
}

// MovesFor returns the legal moves of the given piece. The piece is
// matched by identity, so a piece obtained from another board instance
// (such as a clone) resolves to its counterpart here.
func (b *Board) MovesFor(p Piece) []chess.Move {
	for i, q := range b.pieces {
		if q.Equal(p) && q.IsOnBoard() {
			return b.movesFor(i)
		}
	}
	return nil
}

// MovesFrom returns the legal moves of the piece standing on c.
func (b *Board) MovesFrom(c chess.Coord) []chess.Move {
	i := b.occupant(c)
	if i < 0 {
		return nil
	}
	return b.movesFor(i)
}

// IsLegal reports whether a move with m's endpoints is legal, returning
// the generated move (with its annotations) when it is.
func (b *Board) IsLegal(m chess.Move) (chess.Move, bool) {
	if !m.IsValid() {
		return chess.NoMove, false
	}
	for _, lm := range b.LegalMoves() {
		if lm.Equal(m) {
			return lm, true
		}
	}
	return chess.NoMove, false
}

func (b *Board) generateAll() []chess.Move {
	active := b.ActiveColour()
	var moves []chess.Move
	for i, p := range b.pieces {
		if p.IsOnBoard() && p.colour == active {
			moves = append(moves, b.movesFor(i)...)
		}
	}
	return moves
}

// movesFor produces the moves of the roster piece at index i: candidate
// moves per piece type, restricted to on-board destinations not held by a
// friendly piece, then (on a non-clone board) without moves that leave the
// mover's own king in check.
func (b *Board) movesFor(i int) []chess.Move {
	moves := b.candidateMoves(i)
	if b.clone {
		return moves
	}

	legal := moves[:0]
	for _, m := range moves {
		if b.leavesKingSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe executes m on a clone. The clone keeps the turn counter,
// so its state is Check exactly when the mover's king is attacked.
func (b *Board) leavesKingSafe(m chess.Move) bool {
	c, err := b.TestMove(m)
	if err != nil {
		return false
	}
	return c.state != chess.Check
}

// candidateMoves generates the pseudo-legal moves of the piece at index i.
func (b *Board) candidateMoves(i int) []chess.Move {
	p := b.pieces[i]
	from := p.loc
	var moves []chess.Move

	switch p.kind {
	case chess.King:
		moves = append(moves, b.castlingMoves(i)...)
		moves = b.addRays(moves, from, allDirs, 1)
	case chess.Queen:
		moves = b.addRays(moves, from, allDirs, maxRay)
	case chess.Bishop:
		moves = b.addRays(moves, from, diagonalDirs, maxRay)
	case chess.Rook:
		moves = b.addRays(moves, from, straightDirs, maxRay)
	case chess.Knight:
		for _, j := range knightJumps {
			moves = append(moves, chess.NewMove(from, from.Offset(j[0], j[1])))
		}
	case chess.Pawn:
		moves = b.pawnMoves(i)
	}

	out := moves[:0]
	for _, m := range moves {
		if !m.To.OnBoard() {
			continue
		}
		if c, ok := b.colourAt(m.To); ok && c == p.colour {
			continue
		}
		out = append(out, m)
	}
	return out
}

// addRays casts a ray from from in each direction. The first occupied
// square ends the ray and is included as a capture candidate.
func (b *Board) addRays(moves []chess.Move, from chess.Coord, dirs [][2]int, max int) []chess.Move {
	for _, d := range dirs {
		to := from
		for step := 0; step < max; step++ {
			to = to.Offset(d[0], d[1])
			if !to.OnBoard() {
				break
			}
			moves = append(moves, chess.NewMove(from, to))
			if b.IsOccupied(to) {
				break
			}
		}
	}
	return moves
}
