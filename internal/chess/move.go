package chess

import "fmt"

// MoveKind classifies the side effect a move carries beyond relocating
// the moving piece. The kinds are mutually exclusive.
type MoveKind int

const (
	PlainMove MoveKind = iota
	EnPassantMove
	CastleMove
)

// Move describes a from/to pair plus optional side-effect annotations.
// Constructing a move does not check legality; the board does that.
type Move struct {
	From Coord
	To   Coord

	Kind MoveKind

	// CaptureAt is the square of the captured pawn for en passant.
	// Only meaningful when Kind == EnPassantMove.
	CaptureAt Coord

	// RookFrom and RookTo describe the rook's own relocation.
	// Only meaningful when Kind == CastleMove.
	RookFrom Coord
	RookTo   Coord

	// Promotion is the type a pawn becomes on the farthest rank.
	// NoPiece means no promotion.
	Promotion PieceType

	// Attacking is false for moves that cannot capture on their
	// destination: plain pawn advances and castling.
	Attacking bool
}

// NoMove is the off-board/off-board sentinel used to signal "no move".
var NoMove = Move{From: OffBoard, To: OffBoard}

// NewMove creates an attacking move between two squares.
func NewMove(from, to Coord) Move {
	return Move{From: from, To: to, Attacking: true}
}

// NewQuietMove creates a move that does not threaten its destination.
func NewQuietMove(from, to Coord) Move {
	return Move{From: from, To: to}
}

// NewEnPassant creates an en passant capture of the pawn on captureAt.
func NewEnPassant(from, to, captureAt Coord) Move {
	return Move{From: from, To: to, Kind: EnPassantMove, CaptureAt: captureAt, Attacking: true}
}

// NewCastle creates a castling move for the king together with the
// rook's relocation.
func NewCastle(kingFrom, kingTo, rookFrom, rookTo Coord) Move {
	return Move{From: kingFrom, To: kingTo, Kind: CastleMove, RookFrom: rookFrom, RookTo: rookTo}
}

// IsValid reports whether both endpoints lie on the board.
func (m Move) IsValid() bool {
	return m.From.OnBoard() && m.To.OnBoard()
}

// IsEnPassant reports whether the move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Kind == EnPassantMove
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleMove
}

// IsPromotion reports whether the move carries a promotion type.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// WithPromotion returns a copy of the move promoting to t.
func (m Move) WithPromotion(t PieceType) Move {
	m.Promotion = t
	return m
}

// MoveKey is the identity of a move: its two endpoints.
// It is comparable and can be used as a map key.
type MoveKey struct {
	From, To Coord
}

// Key returns the identity of the move.
func (m Move) Key() MoveKey {
	return MoveKey{From: m.From, To: m.To}
}

// Equal reports whether two moves share both endpoints. Annotations are
// not part of a move's identity.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// String returns the move as "FROM-TO", with a promotion suffix if set.
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.IsPromotion() {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// ParseMove parses "e2e4", "e2-e4" or "e7e8q" style coordinate moves.
// The result carries no annotations other than the promotion type.
func ParseMove(s string) (Move, error) {
	if len(s) >= 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 && len(s) != 5 && !(len(s) == 6 && s[4] == '=') {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseCoord(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	to, err := ParseCoord(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	m := NewMove(from, to)
	if len(s) > 4 {
		p := PieceTypeFromLetter(s[len(s)-1])
		if p == NoPiece || p == King || p == Pawn {
			return NoMove, fmt.Errorf("invalid move %q", s)
		}
		m.Promotion = p
	}
	return m, nil
}
