package hashing

import (
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// SharedDetector is a DuplicateDetector that workers of one run can
// check concurrently.
type SharedDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewSharedDetector creates a detector. maxCapacity of 0 means unlimited.
func NewSharedDetector(exactMatch bool, maxCapacity int) *SharedDetector {
	return &SharedDetector{detector: NewDuplicateDetector(exactMatch, maxCapacity)}
}

// CheckAndAdd reports whether sig was already seen and records it if not.
func (d *SharedDetector) CheckAndAdd(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(sig)
}

// Preload records games from an earlier run so that later games ending in
// the same position are reported. Games already present are skipped and
// not counted as duplicates. It returns the number of signatures stored.
func (d *SharedDetector) Preload(sigs []GameSignature) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	before, dups := d.detector.stored, d.detector.duplicateCount
	for _, sig := range sigs {
		d.detector.CheckAndAdd(sig)
	}
	d.detector.duplicateCount = dups
	return d.detector.stored - before
}

// Counts returns the number of distinct final positions stored and the
// number of duplicates reported so far.
func (d *SharedDetector) Counts() (unique, duplicates int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.UniqueCount(), d.detector.DuplicateCount()
}

// IsFull reports whether the capacity limit has been reached.
func (d *SharedDetector) IsFull() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.IsFull()
}

// SnapshotSignature builds a signature from a stored final position.
func SnapshotSignature(keys *KeyTable, s engine.Snapshot, plies int) GameSignature {
	return GameSignature{
		Hash:     keys.HashSnapshot(s),
		Plies:    plies,
		Snapshot: s,
	}
}
