package hashing

import "github.com/lgbarn/chess-engine-go/internal/engine"

// PositionCounter counts how often each position occurs within one game.
type PositionCounter struct {
	keys   *KeyTable
	counts map[uint64]int
	max    int
}

// NewPositionCounter creates a counter hashing with keys.
func NewPositionCounter(keys *KeyTable) *PositionCounter {
	return &PositionCounter{keys: keys, counts: make(map[uint64]int)}
}

// Add records the board's current position and returns its hash and how
// many times it has now been seen.
func (pc *PositionCounter) Add(b *engine.Board) (uint64, int) {
	h := pc.keys.Hash(b)
	pc.counts[h]++
	n := pc.counts[h]
	if n > pc.max {
		pc.max = n
	}
	return h, n
}

// Count returns how many times the position with hash h was recorded.
func (pc *PositionCounter) Count(h uint64) int {
	return pc.counts[h]
}

// MaxRepetition returns the highest occurrence count of any position.
func (pc *PositionCounter) MaxRepetition() int {
	return pc.max
}

// Distinct returns the number of different positions recorded.
func (pc *PositionCounter) Distinct() int {
	return len(pc.counts)
}
