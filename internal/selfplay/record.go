// Package selfplay plays random games to completion and stores them.
package selfplay

import (
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// Ply is one executed move and the position it produced.
type Ply struct {
	Number        int // 1-based
	Turn          int // board turn the move was played on
	Colour        chess.Colour
	Move          chess.Move
	Piece         chess.PieceType // type of the moving piece before promotion
	State         chess.GameState
	HalfMoveClock int
	Snapshot      engine.Snapshot
	Hash          uint64
	Repetition    int    // occurrences of this position so far in the game
	FEN           string // empty unless requested
	Duration      time.Duration
}

// Record is a finished (or truncated) game.
type Record struct {
	GameID   string
	GameNo   int
	Seed     uint64
	StartFEN string
	Plies    []Ply

	Outcome       chess.GameState
	Truncated     bool // stopped by the ply limit
	MaxRepetition int
	FinalHash     uint64
	Duplicate     bool

	Final *engine.Board
}

// Winner returns the side that delivered mate. ok is false for draws,
// stalemates and unfinished games.
func (r *Record) Winner() (colour chess.Colour, ok bool) {
	if r.Outcome != chess.Checkmate || r.Final == nil || !engine.IsCheckmate(r.Final) {
		return chess.White, false
	}
	return r.Final.ActiveColour().Opposite(), true
}

// Result returns the PGN-style result: "1-0", "0-1", "1/2-1/2" or "*".
// A position without legal moves and without check is scored as a draw
// even though the board labels it Checkmate.
func (r *Record) Result() string {
	if w, ok := r.Winner(); ok {
		if w == chess.White {
			return "1-0"
		}
		return "0-1"
	}
	if r.Outcome.IsDraw() || r.Outcome == chess.Checkmate {
		return "1/2-1/2"
	}
	return "*"
}

// Rows flattens the record into store rows, keeping the optional columns
// selected by ann.
func (r *Record) Rows(ann *config.AnnotationConfig) []store.PlyRow {
	rows := make([]store.PlyRow, len(r.Plies))
	for i := range r.Plies {
		p := &r.Plies[i]
		row := store.PlyRow{
			GameID:        r.GameID,
			GameNo:        int32(r.GameNo),
			Seed:          r.Seed,
			Ply:           int32(p.Number),
			Turn:          int32(p.Turn),
			Colour:        p.Colour.String(),
			Move:          p.Move.String(),
			Piece:         p.Piece.String(),
			State:         p.State.String(),
			Outcome:       r.Outcome.String(),
			HalfMoveClock: int32(p.HalfMoveClock),
		}
		if ann.AddSnapshot {
			row.Snapshot = append([]byte(nil), p.Snapshot[:]...)
		}
		if ann.AddHash {
			row.Hash = p.Hash
		}
		if ann.AddFEN {
			row.FEN = p.FEN
		}
		if ann.AddTiming {
			row.DurationNS = p.Duration.Nanoseconds()
		}
		rows[i] = row
	}
	return rows
}
