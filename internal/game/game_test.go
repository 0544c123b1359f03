package game

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/player"
)

func scripted(t *testing.T, side chess.Side, moves ...string) *player.Player {
	t.Helper()
	s, err := player.NewScriptedStrategy(moves...)
	if err != nil {
		t.Fatal(err)
	}
	return player.New(side.Colour.String(), side, s)
}

func random(side chess.Side, seed uint64) *player.Player {
	return player.New("random", side, player.NewRandomStrategy(seed))
}

func foolsMate(t *testing.T) *Game {
	t.Helper()
	g, err := New(
		scripted(t, chess.StandardSides[0], "f2f3", "g2g4"),
		scripted(t, chess.StandardSides[1], "e7e5", "d8h4"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNew(t *testing.T) {
	g := foolsMate(t)
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", g.ID, err)
	}
	if g.ActivePlayer().Colour != chess.White {
		t.Errorf("ActivePlayer() = %v, want White", g.ActivePlayer())
	}
	if g.State() != chess.Playing || g.Plies() != 0 {
		t.Errorf("State() = %v, Plies() = %d", g.State(), g.Plies())
	}

	other := foolsMate(t)
	if other.ID == g.ID {
		t.Error("two games share an ID")
	}
}

func TestNew_SameColour(t *testing.T) {
	white := chess.StandardSides[0]
	_, err := New(random(white, 1), random(white, 2))
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("New() = %v, want ErrInvalidConfig", err)
	}
}

func TestNewFromBoard(t *testing.T) {
	b := engine.MustFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 10")
	g, err := NewFromBoard(b, random(chess.StandardSides[0], 1), random(chess.StandardSides[1], 2))
	if err != nil {
		t.Fatal(err)
	}
	if g.ActivePlayer().Colour != chess.Black {
		t.Errorf("ActivePlayer() = %v, want Black", g.ActivePlayer())
	}

	_, err = NewFromBoard(b, random(chess.StandardSides[1], 1), random(chess.StandardSides[0], 2))
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("NewFromBoard with swapped players = %v, want ErrInvalidConfig", err)
	}
}

func TestTakeTurn_FoolsMate(t *testing.T) {
	g := foolsMate(t)

	var before, after int
	g.OnBeforeMove(func() { before++ })
	g.OnAfterMove(func() { after++ })

	var results []TurnResult
	for {
		r, err := g.TakeTurn()
		if err != nil {
			t.Fatalf("TakeTurn: %v", err)
		}
		results = append(results, r)
		if !r.Continue {
			break
		}
	}

	if len(results) != 4 {
		t.Fatalf("game lasted %d turns, want 4", len(results))
	}
	for i, r := range results {
		if r.Turn != i+1 {
			t.Errorf("result %d: Turn = %d, want %d", i, r.Turn, i+1)
		}
	}
	last := results[3]
	if last.State != chess.Checkmate || last.Move.String() != "D8-H4" {
		t.Errorf("last result = %+v", last)
	}
	if before != 4 || after != 4 {
		t.Errorf("hooks fired %d/%d times, want 4/4", before, after)
	}

	var got []string
	for _, m := range g.History() {
		got = append(got, m.String())
	}
	want := []string{"F2-F3", "E7-E5", "G2-G4", "D8-H4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}

	r, err := g.TakeTurn()
	if err != nil || r.Continue || r.Move != chess.NoMove || r.State != chess.Checkmate {
		t.Errorf("TakeTurn after mate = %+v, %v", r, err)
	}
	if before != 4 {
		t.Error("hooks fired on a finished game")
	}
}

func TestTakeTurn_HookSeesPosition(t *testing.T) {
	g := foolsMate(t)
	var turns []int
	g.OnBeforeMove(func() { turns = append(turns, g.Board().Turn()) })
	g.OnAfterMove(func() { turns = append(turns, g.Board().Turn()) })

	if _, err := g.TakeTurn(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, turns); diff != "" {
		t.Errorf("hook turns mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeTurn_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  []string
		wantErr error
	}{
		{"script exhausted", nil, chesserrors.ErrNoMove},
		{"illegal move", []string{"e2e5"}, chesserrors.ErrIllegalMove},
		{"moving the opponent's piece", []string{"e7e5"}, chesserrors.ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(scripted(t, chess.StandardSides[0], tt.script...), random(chess.StandardSides[1], 1))
			if err != nil {
				t.Fatal(err)
			}
			_, err = g.TakeTurn()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TakeTurn() = %v, want %v", err, tt.wantErr)
			}
			var ge *chesserrors.GameError
			if !errors.As(err, &ge) || ge.GameID != g.ID || ge.Ply != 1 {
				t.Errorf("error %v lacks game context", err)
			}
			if g.Board().Turn() != 1 || g.Plies() != 0 {
				t.Error("failed turn changed the game")
			}
		})
	}
}

func TestTakeTurn_Promotion(t *testing.T) {
	tests := []struct {
		name string
		move string
		want chess.PieceType
	}{
		{"default queen", "e7e8", chess.Queen},
		{"underpromotion", "e7e8r", chess.Rook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.MustFEN("8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
			g, err := NewFromBoard(b,
				scripted(t, chess.StandardSides[0], tt.move),
				random(chess.StandardSides[1], 1))
			if err != nil {
				t.Fatal(err)
			}
			r, err := g.TakeTurn()
			if err != nil {
				t.Fatal(err)
			}
			if r.Move.Promotion != tt.want {
				t.Errorf("Move.Promotion = %v, want %v", r.Move.Promotion, tt.want)
			}
			p, ok := b.PieceAt(chess.MustParseCoord("E8"))
			if !ok || p.Type() != tt.want {
				t.Errorf("E8 holds %v, want %v", p.Type(), tt.want)
			}
		})
	}
}

func TestAutoPlay_RandomGamesFinish(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g, err := New(random(chess.StandardSides[0], seed), random(chess.StandardSides[1], seed+100))
		if err != nil {
			t.Fatal(err)
		}
		if err := g.AutoPlay(context.Background()); err != nil {
			t.Fatalf("seed %d: AutoPlay: %v", seed, err)
		}
		if g.State().InProgress() {
			t.Errorf("seed %d: game ended in state %v", seed, g.State())
		}
		if g.Plies() != g.Board().Turn()-1 {
			t.Errorf("seed %d: %d plies but turn %d", seed, g.Plies(), g.Board().Turn())
		}
	}
}

func TestAutoPlay_Cancelled(t *testing.T) {
	g, err := New(random(chess.StandardSides[0], 1), random(chess.StandardSides[1], 2))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.OnAfterMove(func() {
		if g.Plies() == 3 {
			cancel()
		}
	})
	if err := g.AutoPlay(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("AutoPlay() = %v, want context.Canceled", err)
	}
	if g.Plies() != 3 {
		t.Errorf("Plies() = %d, want 3", g.Plies())
	}
}

func TestAutoPlay_StopsOnError(t *testing.T) {
	g := foolsMate(t)
	g.players[chess.White] = scripted(t, chess.StandardSides[0], "f2f3")
	err := g.AutoPlay(context.Background())
	if !errors.Is(err, chesserrors.ErrNoMove) {
		t.Errorf("AutoPlay() = %v, want ErrNoMove", err)
	}
	if g.Plies() != 2 {
		t.Errorf("Plies() = %d, want 2", g.Plies())
	}
}
