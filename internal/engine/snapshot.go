package engine

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// SnapshotSize is the length in bytes of an encoded board snapshot.
const SnapshotSize = 38

// Snapshot layout offsets.
const (
	snapSquares   = 0
	snapCastling  = 32
	snapEnPassant = 33
	snapHalfMoves = 34
	snapFullMoves = 36
)

// blackBit is set in a square nibble for black pieces.
const blackBit = 0x8

// Snapshot is a compact fixed-size encoding of a position:
//
//	bytes 0-31   two squares per byte, rank by rank from y=0, file pairs
//	             (x, x+1) with x in the high nibble; each nibble holds the
//	             piece type code with bit 3 set for black
//	byte  32     castling rights (bit0 WK, bit1 WQ, bit2 BK, bit3 BQ)
//	byte  33     en passant target, reserved and always zero
//	bytes 34-35  half-move clock, big-endian
//	bytes 36-37  full-move count (turn / 2), big-endian
//
// The side to move is not recorded.
type Snapshot [SnapshotSize]byte

// Snapshot encodes the current position.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for _, p := range b.pieces {
		if !p.IsOnBoard() {
			continue
		}
		s.setNibble(p.loc, nibble(p.colour, p.kind))
	}
	s[snapCastling] = byte(b.castling)
	s[snapEnPassant] = 0
	binary.BigEndian.PutUint16(s[snapHalfMoves:], uint16(b.halfMoves))
	binary.BigEndian.PutUint16(s[snapFullMoves:], uint16(b.FullMoves()))
	return s
}

func nibble(c chess.Colour, kind chess.PieceType) byte {
	n := byte(kind) & 0x7
	if c == chess.Black {
		n |= blackBit
	}
	return n
}

func (s *Snapshot) setNibble(c chess.Coord, n byte) {
	i := snapSquares + c.Y*(chess.BoardSize/2) + c.X/2
	if c.X%2 == 0 {
		s[i] = s[i]&0x0f | n<<4
	} else {
		s[i] = s[i]&0xf0 | n&0x0f
	}
}

func (s Snapshot) nibble(c chess.Coord) byte {
	v := s[snapSquares+c.Y*(chess.BoardSize/2)+c.X/2]
	if c.X%2 == 0 {
		return v >> 4
	}
	return v & 0x0f
}

// PieceAt decodes the square c. ok is false for an empty square.
func (s Snapshot) PieceAt(c chess.Coord) (colour chess.Colour, kind chess.PieceType, ok bool) {
	if !c.OnBoard() {
		return chess.White, chess.NoPiece, false
	}
	n := s.nibble(c)
	kind = chess.PieceType(n & 0x7)
	if kind == chess.NoPiece {
		return chess.White, chess.NoPiece, false
	}
	colour = chess.White
	if n&blackBit != 0 {
		colour = chess.Black
	}
	return colour, kind, true
}

// Castling returns the encoded castling rights.
func (s Snapshot) Castling() chess.CastlingRights {
	return chess.CastlingRights(s[snapCastling])
}

// HalfMoveClock returns the encoded half-move clock.
func (s Snapshot) HalfMoveClock() int {
	return int(binary.BigEndian.Uint16(s[snapHalfMoves:]))
}

// FullMoves returns the encoded full-move count.
func (s Snapshot) FullMoves() int {
	return int(binary.BigEndian.Uint16(s[snapFullMoves:]))
}

// String returns the base64 form of the snapshot.
func (s Snapshot) String() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

// Validate checks the snapshot for unknown type codes, a non-zero reserved
// byte, undefined castling bits, and a king count other than one per colour.
func (s Snapshot) Validate() error {
	if s[snapEnPassant] != 0 {
		return fmt.Errorf("reserved byte is %#x: %w", s[snapEnPassant], errors.ErrInvalidSnapshot)
	}
	if s.Castling()&^chess.AllCastling != 0 {
		return fmt.Errorf("castling flags %#x: %w", s[snapCastling], errors.ErrInvalidSnapshot)
	}

	var kings [chess.NumColours]int
	for y := range chess.BoardSize {
		for x := range chess.BoardSize {
			c := chess.C(x, y)
			if chess.PieceType(s.nibble(c)&0x7) >= chess.NumPieceTypes {
				return fmt.Errorf("square %s holds code %#x: %w", c, s.nibble(c), errors.ErrInvalidSnapshot)
			}
			if colour, kind, ok := s.PieceAt(c); ok && kind == chess.King {
				kings[colour]++
			}
		}
	}
	for colour, n := range kings {
		if n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, chess.Colour(colour), errors.ErrInvalidSnapshot)
		}
	}
	return nil
}

// ParseSnapshot decodes the base64 form produced by Snapshot.String.
func ParseSnapshot(text string) (Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidSnapshot)
	}
	return DecodeSnapshot(raw)
}

// DecodeSnapshot copies a raw 38-byte snapshot. Contents are not checked;
// call Validate for that.
func DecodeSnapshot(raw []byte) (Snapshot, error) {
	var s Snapshot
	if len(raw) != SnapshotSize {
		return s, fmt.Errorf("got %d bytes, want %d: %w", len(raw), SnapshotSize, errors.ErrInvalidSnapshot)
	}
	copy(s[:], raw)
	return s, nil
}

// NewBoardFromSnapshot rebuilds a board with the standard sides from s.
// The snapshot does not record whose turn it is, so toMove supplies it.
// Move history is inferred: kings and rooks count as unmoved when a
// matching castling right is set, pawns when they stand on their start
// rank.
func NewBoardFromSnapshot(s Snapshot, toMove chess.Colour) (*Board, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := newEmptyBoard(chess.StandardSides)
	for y := range chess.BoardSize {
		for x := range chess.BoardSize {
			c := chess.C(x, y)
			if colour, kind, ok := s.PieceAt(c); ok {
				b.place(colour, kind, c)
			}
		}
	}

	b.castling = s.Castling()
	b.halfMoves = s.HalfMoveClock()
	b.turn = turnFor(s.FullMoves(), toMove)
	b.inferHistory()
	b.refresh()
	return b, nil
}

// turnFor maps a full-move count (turn / 2) and the side to move to a
// turn counter on a board with the standard sides.
func turnFor(fullMoves int, toMove chess.Colour) int {
	if toMove == chess.White {
		return 2*fullMoves + 1
	}
	return 2 * fullMoves
}
