// Package worker runs independent games on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/game"
)

// WorkItem identifies one game to play.
type WorkItem struct {
	Index int    // 0-based game number within the batch
	Seed  uint64 // seed for the game's strategies
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index  int
	Seed   uint64
	Game   *game.Game  // finished game (may be nil on error)
	Record interface{} // Opaque per-game payload; typed by consumer
	Error  error
}

// ProcessFunc plays a single work item. Implementations should return
// promptly once ctx is done.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of workers. Each worker owns
// whatever it builds while processing an item; nothing is shared between
// items except what the ProcessFunc closes over.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. Cancelling ctx has the same effect as Stop.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit queues a work item, blocking while the buffer is full. It
// returns false if the pool was stopped before the item was queued.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// TrySubmit queues a work item without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop cancels the context passed to in-flight items. Queued items are
// drained without being processed.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped reports whether the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	p.cancel()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
