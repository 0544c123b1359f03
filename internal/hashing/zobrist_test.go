package hashing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

func playMoves(t testing.TB, b *engine.Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		lm, ok := b.IsLegal(m)
		if !ok {
			t.Fatalf("%s not legal", s)
		}
		if err := b.Execute(lm); err != nil {
			t.Fatal(err)
		}
	}
}

func TestZobristHashConsistency(t *testing.T) {
	keys := NewSeededKeyTable(42)

	hash1 := keys.Hash(engine.NewBoard())
	hash2 := keys.Hash(engine.MustFEN(engine.InitialFEN))

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	keys := NewSeededKeyTable(42)
	board1 := engine.NewBoard()
	board2 := engine.NewBoard()
	playMoves(t, board2, "e2e4")

	if keys.Hash(board1) == keys.Hash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashTransposition(t *testing.T) {
	keys := NewSeededKeyTable(7)
	a := engine.NewBoard()
	b := engine.NewBoard()
	playMoves(t, a, "g1f3", "g8f6", "b1c3")
	playMoves(t, b, "b1c3", "g8f6", "g1f3")

	if keys.Hash(a) != keys.Hash(b) {
		t.Error("transposed move orders produced different hashes")
	}
}

func TestHashSnapshotMatchesHash(t *testing.T) {
	keys := NewSeededKeyTable(1)
	b := engine.NewBoard()
	playMoves(t, b, "e2e4", "d7d5", "e4d5")

	if got, want := keys.HashSnapshot(b.Snapshot()), keys.Hash(b); got != want {
		t.Errorf("HashSnapshot() = %x, want %x", got, want)
	}
}

func TestSeededKeyTable(t *testing.T) {
	a := NewSeededKeyTable(99)
	b := NewSeededKeyTable(99)
	c := NewSeededKeyTable(100)

	if a.keys != b.keys {
		t.Error("same seed produced different tables")
	}
	if a.keys == c.keys {
		t.Error("different seeds produced the same table")
	}

	seen := make(map[uint64]bool, NumKeys)
	for _, k := range a.keys {
		seen[k] = true
	}
	if len(seen) != NumKeys {
		t.Errorf("%d distinct keys, want %d", len(seen), NumKeys)
	}
}

func TestKey(t *testing.T) {
	keys := NewSeededKeyTable(3)
	if NumKeys != 768 {
		t.Fatalf("NumKeys = %d, want 768", NumKeys)
	}
	if keys.Key(chess.White, chess.NoPiece, chess.C(0, 0)) != 0 {
		t.Error("Key(NoPiece) != 0")
	}
	if keys.Key(chess.White, chess.King, chess.OffBoard) != 0 {
		t.Error("Key(OffBoard) != 0")
	}
	if keys.Key(chess.White, chess.Pawn, chess.C(7, 7)) != keys.keys[NumKeys-64*2+63] {
		t.Error("white pawn on H8 is not the first key of the last type block's last square")
	}
	if keys.Key(chess.Black, chess.Pawn, chess.C(7, 7)) != keys.keys[NumKeys-1] {
		t.Error("black pawn on H8 is not the last key")
	}
}

func TestNewKeyTable(t *testing.T) {
	a, err := NewKeyTable()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewKeyTable()
	if err != nil {
		t.Fatal(err)
	}
	if a.keys == b.keys {
		t.Error("two random tables are identical")
	}
}

func TestKeyTable_WriteRead(t *testing.T) {
	keys := NewSeededKeyTable(5)
	var buf bytes.Buffer
	n, err := keys.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(NumKeys*8) || buf.Len() != NumKeys*8 {
		t.Fatalf("wrote %d bytes (buffer %d), want %d", n, buf.Len(), NumKeys*8)
	}

	first := buf.Bytes()[:8]
	want := keys.keys[0]
	var got uint64
	for _, c := range first {
		got = got<<8 | uint64(c)
	}
	if got != want {
		t.Errorf("first key written as %x, want big-endian %x", got, want)
	}

	loaded, err := ReadKeyTable(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if loaded.keys != keys.keys {
		t.Error("ReadKeyTable did not reproduce the table")
	}
}

func TestReadKeyTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", make([]byte, NumKeys*8-1)},
		{"trailing", make([]byte, NumKeys*8+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadKeyTable(bytes.NewReader(tt.data))
			if !errors.Is(err, chesserrors.ErrInvalidKeyTable) {
				t.Errorf("ReadKeyTable() = %v, want ErrInvalidKeyTable", err)
			}
		})
	}
}

func TestLoadOrCreateKeyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.bin")

	created, err := LoadOrCreateKeyTable(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("key file not written: %v", err)
	}
	if info.Size() != int64(NumKeys*8) {
		t.Errorf("key file size = %d, want %d", info.Size(), NumKeys*8)
	}

	loaded, err := LoadOrCreateKeyTable(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.keys != created.keys {
		t.Error("reloaded table differs from the saved one")
	}

	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreateKeyTable(path); !errors.Is(err, chesserrors.ErrInvalidKeyTable) {
		t.Errorf("corrupt key file: err = %v, want ErrInvalidKeyTable", err)
	}
}
