package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4k3/8/8/8/8/8/8/2B1K1b1 w - - 0 1", true},
		{"K+B vs K+B adjacent on first rank", "4k3/8/8/8/8/8/8/Bb2K3 w - - 0 1", true},
		{"K+B vs K+B f8 and c1", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"K+B vs K+B a1 and b2", "4k3/8/8/8/8/8/1b6/B3K3 w - - 0 1", false},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/3NK3 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
			if tt.want && board.State() != chess.Draw {
				t.Errorf("State() = %v, want Draw", board.State())
			}
			if !tt.want && board.State().IsDraw() {
				t.Errorf("State() = %v, want a game in progress", board.State())
			}
		})
	}
}

func TestMaterialOf(t *testing.T) {
	b := NewBoard()
	m := b.MaterialOf(chess.White)
	if m.Total() != 16 || m[chess.Pawn] != 8 || m.Minors() != 4 || m[chess.King] != 1 {
		t.Errorf("MaterialOf(White) = %v", m)
	}

	play(t, b, "e2e4", "d7d5", "e4d5")
	if got := b.MaterialOf(chess.Black).Total(); got != 15 {
		t.Errorf("black material after exd5 = %d, want 15", got)
	}
	if got := len(b.Pieces()); got != 32 {
		t.Errorf("roster shrank to %d; captured pieces stay in it", got)
	}
	if got := len(b.ActivePieces()); got != 31 {
		t.Errorf("len(ActivePieces()) = %d, want 31", got)
	}
}
