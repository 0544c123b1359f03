package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// minCastleDistance is the smallest king-rook separation that leaves room
// for the king's two-square move and the rook's landing square.
const minCastleDistance = 3

// castlingMoves generates castling moves for the king at roster index i.
// The king must be unmoved; for each unmoved friendly rook on its rank,
// every square strictly between them must be vacant. The king moves two
// squares toward the rook and the rook lands on the square the king
// crossed. Attacked intermediate squares are not checked here; only the
// destination is screened, by the self-check filter.
func (b *Board) castlingMoves(i int) []chess.Move {
	king := b.pieces[i]
	if king.hasMoved {
		return nil
	}

	var moves []chess.Move
	for _, rook := range b.pieces {
		if rook.kind != chess.Rook || rook.colour != king.colour || rook.hasMoved || !rook.IsOnBoard() {
			continue
		}
		if rook.loc.Y != king.loc.Y || abs(rook.loc.X-king.loc.X) < minCastleDistance {
			continue
		}

		step := sign(rook.loc.X - king.loc.X)
		if !b.pathClear(king.loc, rook.loc, step) {
			continue
		}

		kingTo := king.loc.Offset(2*step, 0)
		rookTo := kingTo.Offset(-step, 0)
		moves = append(moves, chess.NewCastle(king.loc, kingTo, rook.loc, rookTo))
	}
	return moves
}

// pathClear reports whether every square strictly between from and to on
// the same rank is empty.
func (b *Board) pathClear(from, to chess.Coord, step int) bool {
	for x := from.X + step; x != to.X; x += step {
		if b.IsOccupied(chess.C(x, from.Y)) {
			return false
		}
	}
	return true
}

// updateCastlingRights clears rights after the piece at index i moves:
// a king loses both, a rook on file 0 or 7 loses its side.
func (b *Board) updateCastlingRights(i int) {
	p := b.pieces[i]
	switch p.kind {
	case chess.King:
		b.castling = b.castling.Clear(chess.KingsideRight(p.colour) | chess.QueensideRight(p.colour))
	case chess.Rook:
		switch p.loc.X {
		case 0:
			b.castling = b.castling.Clear(chess.QueensideRight(p.colour))
		case chess.BoardSize - 1:
			b.castling = b.castling.Clear(chess.KingsideRight(p.colour))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
