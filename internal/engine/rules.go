package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Material counts the active pieces of one colour by type.
type Material [chess.NumPieceTypes]int

// Total returns the number of pieces counted.
func (m Material) Total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// Minors returns the number of bishops and knights.
func (m Material) Minors() int {
	return m[chess.Bishop] + m[chess.Knight]
}

// MaterialOf counts the active pieces of colour c.
func (b *Board) MaterialOf(c chess.Colour) Material {
	var m Material
	for _, p := range b.pieces {
		if p.IsOnBoard() && p.colour == c {
			m[p.kind]++
		}
	}
	return m
}

// HasInsufficientMaterial reports whether neither side can force mate:
// king against king, king and one minor piece against a lone king, or
// king and bishop against king and bishop with both bishops on squares
// of the same colour.
func HasInsufficientMaterial(b *Board) bool {
	white := b.MaterialOf(chess.White)
	black := b.MaterialOf(chess.Black)

	whiteBare := white.Total() == 1
	blackBare := black.Total() == 1
	whiteMinor := white.Total() == 2 && white.Minors() == 1
	blackMinor := black.Total() == 2 && black.Minors() == 1

	switch {
	case whiteBare && blackBare:
		return true
	case whiteBare && blackMinor, blackBare && whiteMinor:
		return true
	case white.Total() == 2 && white[chess.Bishop] == 1 &&
		black.Total() == 2 && black[chess.Bishop] == 1:
		return bishopsShareSquareColour(b)
	}
	return false
}

// bishopsShareSquareColour reports whether every active bishop stands on
// a square of the same colour.
func bishopsShareSquareColour(b *Board) bool {
	seen := false
	var light bool
	for _, p := range b.pieces {
		if !p.IsOnBoard() || p.kind != chess.Bishop {
			continue
		}
		if !seen {
			light = p.loc.IsLight()
			seen = true
			continue
		}
		if p.loc.IsLight() != light {
			return false
		}
	}
	return true
}
