package chess

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coord identifies a square by file (X, 0 = a) and rank (Y, 0 = 1).
type Coord struct {
	X, Y int
}

// OffBoard is the coordinate of pieces that are no longer on the board.
var OffBoard = Coord{X: -1, Y: -1}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// OnBoard reports whether both axes lie in [0, 7].
func (c Coord) OnBoard() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// IsLight reports whether the square index x*8+y is odd. Every square
// of an odd rank counts as light and a1 is dark.
func (c Coord) IsLight() bool {
	return (c.X*BoardSize+c.Y)%2 != 0
}

// Offset returns the coordinate dx files and dy ranks away.
func (c Coord) Offset(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Index returns the square index y*8+x, or -1 when off the board.
func (c Coord) Index() int {
	if !c.OnBoard() {
		return -1
	}
	return c.Y*BoardSize + c.X
}

// String returns the algebraic name of the square, e.g. "A1".
func (c Coord) String() string {
	if !c.OnBoard() {
		return "--"
	}
	return string([]byte{byte('A' + c.X), byte('1' + c.Y)})
}

// ParseCoord converts an algebraic square name such as "e4" or "E4".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return OffBoard, fmt.Errorf("invalid square %q", s)
	}
	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	c := Coord{X: int(file) - 'A', Y: int(s[1]) - '1'}
	if !c.OnBoard() {
		return OffBoard, fmt.Errorf("invalid square %q", s)
	}
	return c, nil
}

// MustParseCoord is like ParseCoord but panics on malformed input.
// It is intended for constants and tests.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}
