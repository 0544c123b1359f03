package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board with the standard sides from a FEN
// string. Missing trailing fields take their defaults (white to move, no
// castling, no en passant, clocks 0 and 1).
//
// The fullmove number N maps to turn 2N-1 with White to move and 2N with
// Black to move. An en passant target marks the pawn beyond it as having
// advanced two squares on the previous turn.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	b := newEmptyBoard(chess.StandardSides)

	if err := parsePiecePositions(b, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(b); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	if err := parseCastlingRights(b, parts); err != nil {
		return nil, err
	}
	halfMoves, fullMove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	b.halfMoves = halfMoves
	if toMove == chess.White {
		b.turn = 2*fullMove - 1
	} else {
		b.turn = 2 * fullMove
	}
	b.inferHistory()

	if err := parseEnPassant(b, parts, toMove); err != nil {
		return nil, err
	}

	b.refresh()
	return b, nil
}

// MustFEN is like NewBoardFromFEN but panics on error. Intended for tests
// and package-level fixtures.
func MustFEN(fen string) *Board {
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(b *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in %q: %w", len(ranks), positions, errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		y := chess.BoardSize - 1 - i
		x := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				x += int(c - '0')
			default:
				kind := chess.PieceTypeFromLetter(byte(c))
				if kind == chess.NoPiece {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if x >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				b.place(colour, kind, chess.C(x, y))
				x++
			}
		}
		if x != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", y+1, x, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// checkKings enforces exactly one king per colour.
func checkKings(b *Board) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := b.MaterialOf(c)[chess.King]; n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(b *Board, parts []string) error {
	b.castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			b.castling |= chess.WhiteKingside
		case 'Q':
			b.castling |= chess.WhiteQueenside
		case 'k':
			b.castling |= chess.BlackKingside
		case 'q':
			b.castling |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling flag: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant marks the pawn that just advanced past the en passant
// target square.
func parseEnPassant(b *Board, parts []string, toMove chess.Colour) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseCoord(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := b.Side(toMove.Opposite())
	at := target.Offset(0, mover.Direction)
	i := b.occupant(at)
	if i < 0 || b.pieces[i].kind != chess.Pawn || b.pieces[i].colour != mover.Colour {
		return fmt.Errorf("no pawn beyond en passant square %s: %w", target, errors.ErrInvalidFEN)
	}

	p := &b.pieces[i]
	p.hasMoved = true
	p.lastMoveTurn = b.turn - 1
	p.lastMoveFrom = target.Offset(0, -mover.Direction)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (halfMoves, fullMove int, err error) {
	fullMove = 1
	if len(parts) >= 5 {
		halfMoves, err = strconv.Atoi(parts[4])
		if err != nil || halfMoves < 0 {
			return 0, 0, fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	if len(parts) >= 6 {
		fullMove, err = strconv.Atoi(parts[5])
		if err != nil || fullMove < 1 {
			return 0, 0, fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
	}
	return halfMoves, fullMove, nil
}

// inferHistory reconstructs has-moved flags for a position built without
// its move history. Kings and rooks stay unmoved only when a castling
// right names them; pawns stay unmoved on their start rank.
func (b *Board) inferHistory() {
	for i := range b.pieces {
		p := &b.pieces[i]
		side := b.Side(p.colour)
		switch p.kind {
		case chess.King:
			rights := chess.KingsideRight(p.colour) | chess.QueensideRight(p.colour)
			p.hasMoved = b.castling&rights == 0 || p.loc != chess.C(4, side.BaseRank())
		case chess.Rook:
			p.hasMoved = true
			if p.loc == chess.C(0, side.BaseRank()) && b.castling.Has(chess.QueensideRight(p.colour)) {
				p.hasMoved = false
			}
			if p.loc == chess.C(chess.BoardSize-1, side.BaseRank()) && b.castling.Has(chess.KingsideRight(p.colour)) {
				p.hasMoved = false
			}
		case chess.Pawn:
			p.hasMoved = p.loc.Y != side.PawnRank()
		}
	}
}

// FEN returns the position as a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder

	b.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if b.ActiveColour() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantTarget())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", b.halfMoves, (b.turn+1)/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (b *Board) writePiecePositions(sb *strings.Builder) {
	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := range chess.BoardSize {
			p, ok := b.PieceAt(chess.C(x, y))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

// enPassantTarget returns the square behind a pawn that advanced two
// squares on the previous turn, or "-".
func (b *Board) enPassantTarget() string {
	for _, p := range b.pieces {
		if p.kind == chess.Pawn && p.IsOnBoard() && p.JustMoved(b.turn) && p.DoubleStepped() {
			return strings.ToLower(p.loc.Offset(0, -p.direction).String())
		}
	}
	return "-"
}
