package selfplay

import (
	"context"
	"errors"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/player"
)

// Options controls how a single game is played and recorded.
type Options struct {
	Keys      *hashing.KeyTable
	MaxPlies  int  // 0 = no limit
	RecordFEN bool // fill Ply.FEN
}

// NewRandomGame sets up a game on b between two random players seeded
// from seed.
func NewRandomGame(b *engine.Board, seed uint64) (*game.Game, error) {
	return game.NewFromBoard(b,
		player.New("random", chess.StandardSides[0], player.NewRandomStrategy(seed)),
		player.New("random", chess.StandardSides[1], player.NewRandomStrategy(seed+1)),
	)
}

// PlayGame plays g until it ends, the ply limit is reached, or ctx is
// done. The partial record is returned alongside any error.
func PlayGame(ctx context.Context, g *game.Game, gameNo int, seed uint64, opts Options) (*Record, error) {
	b := g.Board()
	rec := &Record{
		GameID:   g.ID,
		GameNo:   gameNo,
		Seed:     seed,
		StartFEN: b.FEN(),
		Final:    b,
	}
	positions := hashing.NewPositionCounter(opts.Keys)
	positions.Add(b)

	var err error
	for b.State().InProgress() {
		if opts.MaxPlies > 0 && len(rec.Plies) >= opts.MaxPlies {
			rec.Truncated = true
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}
		colour := b.ActiveColour()
		var r game.TurnResult
		if r, err = g.TakeTurn(); err != nil {
			var ge *chesserrors.GameError
			if errors.As(err, &ge) {
				ge.GameNo = gameNo
			}
			break
		}
		rec.Plies = append(rec.Plies, newPly(b, positions, r, colour, len(rec.Plies)+1, opts))
	}

	rec.Outcome = b.State()
	rec.MaxRepetition = positions.MaxRepetition()
	rec.FinalHash = opts.Keys.Hash(b)
	return rec, err
}

func newPly(b *engine.Board, positions *hashing.PositionCounter, r game.TurnResult, colour chess.Colour, n int, opts Options) Ply {
	piece := chess.Pawn
	if !r.Move.IsPromotion() {
		if p, ok := b.PieceAt(r.Move.To); ok {
			piece = p.Type()
		}
	}
	hash, seen := positions.Add(b)
	ply := Ply{
		Number:        n,
		Turn:          r.Turn,
		Colour:        colour,
		Move:          r.Move,
		Piece:         piece,
		State:         r.State,
		HalfMoveClock: b.HalfMoveClock(),
		Snapshot:      b.Snapshot(),
		Hash:          hash,
		Repetition:    seen,
		Duration:      r.Duration,
	}
	if opts.RecordFEN {
		ply.FEN = b.FEN()
	}
	return ply
}
