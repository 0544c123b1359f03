package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// refresh rebuilds the derived grid and classifies the position.
//
// On a full board the checks run in order: fifty-move rule, insufficient
// material, no legal moves (reported as Checkmate whether or not the king
// is attacked), then the opponent's attack scan for Check. A speculative
// clone only rebuilds the grid and runs the attack scan.
func (b *Board) refresh() {
	b.rebuildGrid()
	b.state = chess.Playing
	b.legal = nil
	b.legalValid = false

	if b.clone {
		b.scanAttacks()
		return
	}

	if b.halfMoves >= FiftyMoveLimit {
		b.state = chess.DrawByFiftyMoveRule
	}
	if HasInsufficientMaterial(b) {
		b.state = chess.Draw
	}
	if b.state != chess.Playing {
		return
	}

	b.legal = b.generateAll()
	b.legalValid = true
	if len(b.legal) == 0 {
		b.state = chess.Checkmate
		return
	}

	b.scanAttacks()
}

// scanAttacks marks every square reached by one of the opponent's
// attacking moves and sets Check if the active king stands on one.
func (b *Board) scanAttacks() {
	active := b.ActiveColour()
	for i, p := range b.pieces {
		if !p.IsOnBoard() || p.colour == active {
			continue
		}
		for _, m := range b.candidateMoves(i) {
			if !m.Attacking {
				continue
			}
			sq := &b.squares[m.To.X][m.To.Y]
			sq.attacked = true
			if sq.occupant >= 0 {
				target := b.pieces[sq.occupant]
				if target.kind == chess.King && target.colour == active {
					b.state = chess.Check
				}
			}
		}
	}
}

// IsAttackedBy reports whether any piece of colour c has an attacking
// move onto sq. Unlike IsUnderAttack it does not depend on the last
// refresh, so it also works in drawn and checkmated positions.
func (b *Board) IsAttackedBy(sq chess.Coord, c chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	for i, p := range b.pieces {
		if !p.IsOnBoard() || p.colour != c {
			continue
		}
		for _, m := range b.candidateMoves(i) {
			if m.Attacking && m.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether the king of colour c is attacked.
func (b *Board) IsInCheck(c chess.Colour) bool {
	king, ok := b.King(c)
	if !ok {
		return false
	}
	return b.IsAttackedBy(king.loc, c.Opposite())
}
