package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnStartRank returns the rank pawns advancing in dir start on.
func pawnStartRank(dir int) int {
	if dir > 0 {
		return 1
	}
	return chess.BoardSize - 2
}

// pawnMoves generates the candidate moves of the pawn at roster index i.
// Forward advances are non-attacking; diagonal captures and en passant
// are attacking. Promotion is left to whoever supplies the move.
func (b *Board) pawnMoves(i int) []chess.Move {
	p := b.pieces[i]
	from := p.loc
	dir := p.direction
	var moves []chess.Move

	one := from.Offset(0, dir)
	if one.OnBoard() && !b.IsOccupied(one) {
		moves = append(moves, chess.NewQuietMove(from, one))

		two := from.Offset(0, 2*dir)
		if from.Y == pawnStartRank(dir) && two.OnBoard() && !b.IsOccupied(two) {
			moves = append(moves, chess.NewQuietMove(from, two))
		}
	}

	for _, dx := range []int{-1, 1} {
		diag := from.Offset(dx, dir)
		if !diag.OnBoard() {
			continue
		}
		if c, ok := b.colourAt(diag); ok {
			if c != p.colour {
				moves = append(moves, chess.NewMove(from, diag))
			}
			continue
		}

		// En passant: an opposing pawn beside us that advanced two ranks
		// on the previous turn is captured from behind.
		adj := from.Offset(dx, 0)
		j := b.occupant(adj)
		if j < 0 {
			continue
		}
		target := b.pieces[j]
		if target.kind == chess.Pawn && target.colour != p.colour &&
			target.JustMoved(b.turn) && target.DoubleStepped() {
			moves = append(moves, chess.NewEnPassant(from, diag, adj))
		}
	}

	return moves
}

// needsPromotion reports whether a pawn move by the piece at index i
// lands on its side's farthest rank.
func (b *Board) needsPromotion(i int, to chess.Coord) bool {
	p := b.pieces[i]
	return p.kind == chess.Pawn && to.Y == b.Side(p.colour).PromotionRank()
}

// NeedsPromotion reports whether m moves a pawn onto its farthest rank.
func (b *Board) NeedsPromotion(m chess.Move) bool {
	i := b.occupant(m.From)
	if i < 0 {
		return false
	}
	return b.needsPromotion(i, m.To)
}
