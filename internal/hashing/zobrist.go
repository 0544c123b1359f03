// Package hashing provides position hashing and duplicate detection for
// self-play games.
package hashing

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// pieceTypes is the number of real piece types (King through Pawn).
const pieceTypes = int(chess.NumPieceTypes) - 1

// NumKeys is the number of keys in a table: one per piece type, colour
// and square.
const NumKeys = pieceTypes * chess.NumColours * chess.BoardSize * chess.BoardSize

// KeyTable holds one random 64-bit key per (piece type, colour, square).
// A table is read-only once built and safe for concurrent use.
type KeyTable struct {
	keys [NumKeys]uint64
}

// NewKeyTable draws every key from crypto/rand.
func NewKeyTable() (*KeyTable, error) {
	var buf [NumKeys * 8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("reading random keys: %w", err)
	}
	t := &KeyTable{}
	for i := range t.keys {
		t.keys[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	return t, nil
}

// NewSeededKeyTable builds a reproducible table from a seed. Use it for
// tests and for runs that must hash identically without a key file.
func NewSeededKeyTable(seed uint64) *KeyTable {
	var s [32]byte
	binary.BigEndian.PutUint64(s[:], seed)
	rng := mrand.New(mrand.NewChaCha8(s))
	t := &KeyTable{}
	for i := range t.keys {
		t.keys[i] = rng.Uint64()
	}
	return t
}

// keyIndex maps a piece type, colour and square onto the table.
func keyIndex(c chess.Colour, kind chess.PieceType, sq chess.Coord) int {
	return ((int(kind)-1)*chess.NumColours+int(c))*chess.BoardSize*chess.BoardSize + sq.Index()
}

// Key returns the key for a piece of the given colour and type on sq.
// It returns 0 for NoPiece or an off-board square.
func (t *KeyTable) Key(c chess.Colour, kind chess.PieceType, sq chess.Coord) uint64 {
	if kind <= chess.NoPiece || kind >= chess.NumPieceTypes || !sq.OnBoard() {
		return 0
	}
	return t.keys[keyIndex(c, kind, sq)]
}

// Hash returns the XOR of the keys of every piece on the board.
func (t *KeyTable) Hash(b *engine.Board) uint64 {
	var h uint64
	for _, p := range b.ActivePieces() {
		h ^= t.Key(p.Colour(), p.Type(), p.Location())
	}
	return h
}

// HashSnapshot hashes the occupancy encoded in a snapshot. It agrees with
// Hash for the board the snapshot was taken from.
func (t *KeyTable) HashSnapshot(s engine.Snapshot) uint64 {
	var h uint64
	for y := range chess.BoardSize {
		for x := range chess.BoardSize {
			sq := chess.C(x, y)
			if c, kind, ok := s.PieceAt(sq); ok {
				h ^= t.Key(c, kind, sq)
			}
		}
	}
	return h
}

// WriteTo writes the table as NumKeys big-endian uint64 values.
func (t *KeyTable) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var buf [8]byte
	var n int64
	for _, k := range t.keys {
		binary.BigEndian.PutUint64(buf[:], k)
		m, err := bw.Write(buf[:])
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ReadKeyTable reads a table written by WriteTo. Short input and trailing
// data both fail with ErrInvalidKeyTable.
func ReadKeyTable(r io.Reader) (*KeyTable, error) {
	br := bufio.NewReader(r)
	t := &KeyTable{}
	var buf [8]byte
	for i := range t.keys {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("key %d: %v: %w", i, err, errors.ErrInvalidKeyTable)
		}
		t.keys[i] = binary.BigEndian.Uint64(buf[:])
	}
	if _, err := br.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after %d keys: %w", NumKeys, errors.ErrInvalidKeyTable)
	}
	return t, nil
}

// Save writes the table to path.
func (t *KeyTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := t.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing key table %s", path)
	}
	return f.Close()
}

// LoadKeyTable reads a table saved with Save.
func LoadKeyTable(path string) (*KeyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadKeyTable(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading key table %s", path)
	}
	return t, nil
}

// LoadOrCreateKeyTable loads the table at path, or creates a new random
// table and saves it there when the file does not exist. An empty path
// returns a fresh unsaved table.
func LoadOrCreateKeyTable(path string) (*KeyTable, error) {
	if path == "" {
		return NewKeyTable()
	}
	t, err := LoadKeyTable(path)
	if err == nil {
		return t, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	t, err = NewKeyTable()
	if err != nil {
		return nil, err
	}
	if err := t.Save(path); err != nil {
		return nil, err
	}
	return t, nil
}
