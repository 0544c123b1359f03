package selfplay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/store"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// seedStride spreads per-game seeds across the seed space.
const seedStride = 0x9e3779b97f4a7c15

// Summary aggregates a batch of games.
type Summary struct {
	Games      int
	Plies      int
	Outcomes   map[chess.GameState]int
	Results    map[string]int
	Truncated  int
	Duplicates int
	Failed     int
	Elapsed    time.Duration
}

// Runner plays a batch of random games on a worker pool and writes their
// rows to a store.
type Runner struct {
	cfg    *config.Config
	keys   *hashing.KeyTable
	dups   *hashing.SharedDetector
	writer store.Writer
	onGame []func(*Record)
}

// NewRunner creates a runner. w may be nil when nothing is stored.
func NewRunner(cfg *config.Config, keys *hashing.KeyTable, w store.Writer) *Runner {
	if w == nil {
		w = store.Discard{}
	}
	r := &Runner{cfg: cfg, keys: keys, writer: w}
	if cfg.Duplicate.Detect {
		r.dups = hashing.NewSharedDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxGames)
	}
	return r
}

// OnGame registers a callback invoked for every finished game, in
// completion order, from the goroutine that called Run.
func (r *Runner) OnGame(fn func(*Record)) {
	r.onGame = append(r.onGame, fn)
}

// LoadCheckFile preloads the final positions of the games in a record
// file from an earlier run, so that games ending in one of them are
// reported as duplicates. It returns the number of positions loaded.
func (r *Runner) LoadCheckFile(path string) (int, error) {
	if r.dups == nil {
		return 0, fmt.Errorf("check file %s without duplicate detection: %w", path, chesserrors.ErrInvalidConfig)
	}
	rows, err := store.ReadFile(path)
	if err != nil {
		return 0, err
	}
	sigs, err := FinalSignatures(r.keys, rows)
	if err != nil {
		return 0, chesserrors.Wrapf(err, "check file %s", path)
	}
	n := r.dups.Preload(sigs)
	r.cfg.Logf(1, "Loaded %d final positions from %s", n, path)
	return n, nil
}

// FinalSignatures returns the signature of the last ply of every game in
// rows. The rows must carry snapshots.
func FinalSignatures(keys *hashing.KeyTable, rows []store.PlyRow) ([]hashing.GameSignature, error) {
	last := make(map[string]store.PlyRow)
	var order []string
	for _, row := range rows {
		prev, seen := last[row.GameID]
		if !seen {
			order = append(order, row.GameID)
		}
		if !seen || row.Ply > prev.Ply {
			last[row.GameID] = row
		}
	}

	sigs := make([]hashing.GameSignature, 0, len(order))
	for _, id := range order {
		row := last[id]
		s, err := engine.DecodeSnapshot(row.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("game %s ply %d: %w", id, row.Ply, err)
		}
		sigs = append(sigs, hashing.SnapshotSignature(keys, s, int(row.Ply)))
	}
	return sigs, nil
}

// GameSeed returns the seed used for game index i of a batch seeded with base.
func GameSeed(base uint64, i int) uint64 {
	return base + uint64(i)*seedStride
}

// Run plays cfg.Play.Games games. Games that fail are counted and the
// first error is returned after the batch finishes; an engine invariant
// violation stops the batch early.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	base := r.cfg.Play.EffectiveSeed()
	r.cfg.Logf(2, "seed %d", base)

	pool := worker.NewPoolWithOptions(r.process,
		worker.WithWorkers(r.cfg.Workers),
		worker.WithBufferSize(r.cfg.Workers*2))
	pool.Start(ctx)

	go func() {
		for i := 0; i < r.cfg.Play.Games; i++ {
			if !pool.Submit(worker.WorkItem{Index: i, Seed: GameSeed(base, i)}) {
				break
			}
		}
		pool.Close()
	}()

	sum := Summary{
		Outcomes: make(map[chess.GameState]int),
		Results:  make(map[string]int),
	}
	var firstErr error
	batch := make([]*Record, 0, r.cfg.Output.BatchSize)

	for res := range pool.Results() {
		if res.Error != nil {
			sum.Failed++
			if firstErr == nil {
				firstErr = res.Error
			}
			if chesserrors.IsInvariantViolation(res.Error) {
				pool.Stop()
			}
			r.cfg.Logf(1, "game %d failed: %v", res.Index+1, res.Error)
			continue
		}
		rec := res.Record.(*Record)
		r.tally(&sum, rec)
		for _, fn := range r.onGame {
			fn(rec)
		}

		batch = append(batch, rec)
		if len(batch) >= r.cfg.Output.BatchSize {
			if err := r.flush(batch); err != nil && firstErr == nil {
				firstErr = err
				pool.Stop()
			}
			batch = batch[:0]
		}
	}
	if err := r.flush(batch); err != nil && firstErr == nil {
		firstErr = err
	}

	sum.Elapsed = time.Since(start)
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	r.cfg.Logf(2, "%d games, %d plies, %d duplicates, %d failed in %v",
		sum.Games, sum.Plies, sum.Duplicates, sum.Failed, sum.Elapsed.Round(time.Millisecond))
	return sum, firstErr
}

func (r *Runner) process(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, Seed: item.Seed}

	b, err := r.cfg.Play.NewBoard()
	if err != nil {
		res.Error = fmt.Errorf("start position: %w", err)
		return res
	}
	g, err := NewRandomGame(b, item.Seed)
	if err != nil {
		res.Error = err
		return res
	}
	res.Game = g

	rec, err := PlayGame(ctx, g, item.Index+1, item.Seed, Options{
		Keys:      r.keys,
		MaxPlies:  r.cfg.Play.MaxPlies,
		RecordFEN: r.cfg.Annotation.AddFEN,
	})
	if err != nil {
		res.Error = err
		return res
	}
	if r.dups != nil {
		rec.Duplicate = r.dups.CheckAndAdd(hashing.NewSignature(r.keys, g.Board(), len(rec.Plies)))
	}
	res.Record = rec
	return res
}

func (r *Runner) tally(sum *Summary, rec *Record) {
	sum.Games++
	sum.Plies += len(rec.Plies)
	sum.Outcomes[rec.Outcome]++
	sum.Results[rec.Result()]++
	if rec.Truncated {
		sum.Truncated++
	}
	if rec.Duplicate {
		sum.Duplicates++
		if w := r.cfg.Duplicate.DuplicateFile; w != nil {
			fmt.Fprintf(w, "%d\t%s\t%016x\n", rec.GameNo, rec.GameID, rec.FinalHash)
		}
	}
	r.cfg.Logf(2, "game %d: %s %s after %d plies", rec.GameNo, rec.Outcome, rec.Result(), len(rec.Plies))
}

func (r *Runner) flush(batch []*Record) error {
	for _, rec := range batch {
		if err := r.writer.WriteRows(rec.Rows(r.cfg.Annotation)); err != nil {
			return &chesserrors.GameError{Err: err, GameID: rec.GameID, GameNo: rec.GameNo}
		}
	}
	return nil
}

// IsInterrupted reports whether err came from a cancelled or expired run.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
