package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Execute applies m to the board and re-derives the board state.
//
// A move with an off-board endpoint is ignored and nil is returned. Moving
// from a vacant square, or capturing a king outside speculative testing,
// returns an *errors.InvariantError and leaves the board untouched.
//
// Execute does not check legality: callers validate m against LegalMoves
// (see IsLegal) before executing it.
func (b *Board) Execute(m chess.Move) error {
	if !m.IsValid() {
		return nil
	}

	mover := b.occupant(m.From)
	if mover < 0 {
		return b.invariant(errors.ErrVacantSquare, m)
	}

	captureAt := m.To
	if m.IsEnPassant() {
		captureAt = m.CaptureAt
	}
	target := b.occupant(captureAt)
	if target >= 0 && b.pieces[target].kind == chess.King && !b.clone {
		return b.invariant(errors.ErrKingCapture, m)
	}

	rook := -1
	if m.IsCastle() {
		rook = b.occupant(m.RookFrom)
		if rook < 0 {
			return b.invariant(errors.ErrVacantSquare, m)
		}
	}

	// Half-move clock
	b.halfMoves++
	if b.pieces[mover].kind == chess.Pawn || target >= 0 {
		b.halfMoves = 0
	}

	b.updateCastlingRights(mover)

	if target >= 0 {
		b.pieces[target].capture()
	}
	b.pieces[mover].move(m.To, b.turn)

	switch {
	case m.IsPromotion():
		if b.needsPromotion(mover, m.To) {
			b.pieces[mover].promote(m.Promotion)
		}
	case m.IsCastle():
		b.pieces[rook].move(m.RookTo, b.turn)
	}

	if !b.clone {
		b.turn++
	}
	b.refresh()
	return nil
}

// invariant builds the error returned for a violated engine invariant.
func (b *Board) invariant(err error, m chess.Move) error {
	return &errors.InvariantError{Err: err, Turn: b.turn, Move: m.String()}
}
