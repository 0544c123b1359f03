package engine

import (
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// noTurn is the last-move turn of a piece that has never moved.
const noTurn = -1

// Piece is a single entry of a board's roster. Pieces are never removed
// from the roster; a captured piece is moved to chess.OffBoard and stays
// there. Values returned by the Board are copies.
type Piece struct {
	colour    chess.Colour
	kind      chess.PieceType
	number    int
	loc       chess.Coord
	direction int
	hasMoved  bool

	lastMoveTurn int
	lastMoveFrom chess.Coord
}

func newPiece(side chess.Side, kind chess.PieceType, number int, loc chess.Coord) Piece {
	return Piece{
		colour:       side.Colour,
		kind:         kind,
		number:       number,
		loc:          loc,
		direction:    side.Direction,
		lastMoveTurn: noTurn,
		lastMoveFrom: chess.OffBoard,
	}
}

// Colour returns the colour of the piece.
func (p Piece) Colour() chess.Colour { return p.colour }

// Opponent returns the colour of the opposing side.
func (p Piece) Opponent() chess.Colour { return p.colour.Opposite() }

// Type returns the current piece type.
func (p Piece) Type() chess.PieceType { return p.kind }

// Number returns the sequence number distinguishing pieces of the same
// colour and type, e.g. the 2 in "Knight 2". Kings and queens use 0.
func (p Piece) Number() int { return p.number }

// Location returns the square the piece stands on, or chess.OffBoard.
func (p Piece) Location() chess.Coord { return p.loc }

// Direction returns +1 or -1, the way this piece's side advances.
func (p Piece) Direction() int { return p.direction }

// HasMoved reports whether the piece has moved since it was created.
func (p Piece) HasMoved() bool { return p.hasMoved }

// LastMoveTurn returns the board turn on which the piece last moved.
func (p Piece) LastMoveTurn() int { return p.lastMoveTurn }

// IsOnBoard reports whether the piece is still in play.
func (p Piece) IsOnBoard() bool { return p.loc.OnBoard() }

// JustMoved reports whether the piece moved on the turn preceding turn.
func (p Piece) JustMoved(turn int) bool {
	return p.hasMoved && p.lastMoveTurn == turn-1
}

// DoubleStepped reports whether the piece's last move covered two ranks
// along its file, as a pawn's opening advance does.
func (p Piece) DoubleStepped() bool {
	if !p.lastMoveFrom.OnBoard() || !p.loc.OnBoard() {
		return false
	}
	return p.lastMoveFrom.X == p.loc.X && abs(p.loc.Y-p.lastMoveFrom.Y) == 2
}

// ID returns a short identifier such as "K", "Q", "N1" or "P8".
func (p Piece) ID() string {
	code := string(p.kind.Letter())
	if p.number > 0 {
		return code + strconv.Itoa(p.number)
	}
	return code
}

var (
	whiteSymbols = [chess.NumPieceTypes]rune{
		'?', '♔', '♕', '♗', '♘', '♖', '♙',
	}
	blackSymbols = [chess.NumPieceTypes]rune{
		'?', '♚', '♛', '♝', '♞', '♜', '♟',
	}
)

// Symbol returns the Unicode chess symbol for the piece.
func (p Piece) Symbol() rune {
	if p.kind <= chess.NoPiece || p.kind >= chess.NumPieceTypes {
		return '?'
	}
	if p.colour == chess.Black {
		return blackSymbols[p.kind]
	}
	return whiteSymbols[p.kind]
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	c := p.kind.Letter()
	if p.colour == chess.Black {
		c += 'a' - 'A'
	}
	return c
}

// Equal reports whether two pieces are the same logical piece: same
// colour, type and sequence number. Location and move history are
// ignored so a piece matches its counterpart on a cloned board.
func (p Piece) Equal(o Piece) bool {
	return p.colour == o.colour && p.kind == o.kind && p.number == o.number
}

// move relocates the piece and records the turn. No legality check is
// made here; the board is responsible for that.
func (p *Piece) move(to chess.Coord, turn int) {
	p.lastMoveFrom = p.loc
	p.loc = to
	p.hasMoved = true
	p.lastMoveTurn = turn
}

// capture takes the piece out of play permanently.
func (p *Piece) capture() {
	p.loc = chess.OffBoard
}

// promote changes the piece type in place.
func (p *Piece) promote(kind chess.PieceType) {
	p.kind = kind
}
