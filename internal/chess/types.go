// Package chess provides the value types shared by the rules engine:
// colours, piece types, board coordinates, moves and game states.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of playing colours.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type. The numeric values are the
// 3-bit codes used by the board snapshot; NoPiece (0) marks an empty square.
type PieceType int

const (
	NoPiece PieceType = iota
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece type.
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'B', 'N', 'R', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a letter (either case) to a piece type.
// It returns NoPiece for anything that is not a piece letter.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// IsMinor reports whether the piece type is a bishop or a knight.
func (p PieceType) IsMinor() bool {
	return p == Bishop || p == Knight
}

// IsSliding reports whether the piece type moves along rays.
func (p PieceType) IsSliding() bool {
	return p == Queen || p == Rook || p == Bishop
}

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// Side binds a colour to the direction its pawns advance along the y axis.
type Side struct {
	Colour    Colour
	Direction int
}

// BaseRank returns the rank index of the side's back rank.
func (s Side) BaseRank() int {
	if s.Direction > 0 {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this side start on.
func (s Side) PawnRank() int {
	return s.BaseRank() + s.Direction
}

// PromotionRank returns the farthest rank index for this side's pawns.
func (s Side) PromotionRank() int {
	if s.Direction > 0 {
		return BoardSize - 1
	}
	return 0
}

// StandardSides is White moving up from rank 1 as the first player, Black
// moving down from rank 8 as the second.
var StandardSides = [NumColours]Side{
	{Colour: White, Direction: 1},
	{Colour: Black, Direction: -1},
}

// GameState is the overall classification of a position.
type GameState int

const (
	Playing GameState = iota
	Check
	// Checkmate is reported whenever the side to move has no legal moves,
	// whether or not its king is attacked.
	Checkmate
	Draw
	DrawByFiftyMoveRule
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Draw:
		return "Draw"
	case DrawByFiftyMoveRule:
		return "DrawByFiftyMoveRule"
	default:
		return "Unknown"
	}
}

// InProgress reports whether play continues from this state.
func (s GameState) InProgress() bool {
	return s == Playing || s == Check
}

// IsDraw reports whether the state is one of the drawn outcomes.
func (s GameState) IsDraw() bool {
	return s == Draw || s == DrawByFiftyMoveRule
}

// CastlingRights holds four independent castling permissions.
// The bit layout is the one written to byte 32 of a board snapshot.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// KingsideRight returns the kingside castling bit for a colour.
func KingsideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside castling bit for a colour.
func QueensideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether all bits of r are set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Clear returns the rights with the bits of r removed.
func (c CastlingRights) Clear(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN form of the castling rights ("KQkq", "-").
func (c CastlingRights) String() string {
	var s []byte
	if c.Has(WhiteKingside) {
		s = append(s, 'K')
	}
	if c.Has(WhiteQueenside) {
		s = append(s, 'Q')
	}
	if c.Has(BlackKingside) {
		s = append(s, 'k')
	}
	if c.Has(BlackQueenside) {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
