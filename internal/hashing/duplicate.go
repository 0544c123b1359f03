package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// DuplicateDetector tracks the final positions of finished games.
type DuplicateDetector struct {
	// hashTable stores seen signatures by position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same game length
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// stored is the number of signatures held
	stored int
}

// GameSignature stores identifying information about a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of half-moves played
	Plies int
	// Snapshot is the encoded final position, compared on hash matches
	Snapshot engine.Snapshot
}

// NewSignature builds the signature of a finished game.
func NewSignature(keys *KeyTable, b *engine.Board, plies int) GameSignature {
	return GameSignature{
		Hash:     keys.Hash(b),
		Plies:    plies,
		Snapshot: b.Snapshot(),
	}
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}

	// Guard against hash collisions
	if a.Snapshot != b.Snapshot {
		return false
	}

	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}

	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
// Always returns false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.stored = 0
}
