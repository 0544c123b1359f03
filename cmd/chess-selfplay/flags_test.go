package main

import (
	"testing"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// saveRestore sets a flag pointer and returns a func restoring the old value.
// Usage: defer saveRestore(quiet, true)()
func saveRestore[T any](ptr *T, val T) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Play.Games, 1)
	testutil.AssertEqual(t, cfg.Play.Seed, uint64(0))
	testutil.AssertEqual(t, cfg.Play.Delay, 500*time.Millisecond)
	testutil.AssertEqual(t, cfg.Output.Format, config.FormatAuto)
	testutil.AssertEqual(t, cfg.Output.BatchSize, 64)
	testutil.AssertTrue(t, cfg.Annotation.AddSnapshot, "snapshots on by default")
	testutil.AssertTrue(t, cfg.Annotation.AddHash, "hashes on by default")
	testutil.AssertFalse(t, cfg.Duplicate.Detect, "duplicate detection off by default")
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyPlayFlags(t *testing.T) {
	defer saveRestore(games, 12)()
	defer saveRestore(seed, uint64(42))()
	defer saveRestore(maxPlies, 80)()
	defer saveRestore(startFEN, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")()

	cfg := config.NewConfig()
	applyPlayFlags(cfg)
	testutil.AssertEqual(t, cfg.Play.Games, 12)
	testutil.AssertEqual(t, cfg.Play.Seed, uint64(42))
	testutil.AssertEqual(t, cfg.Play.MaxPlies, 80)
	testutil.AssertEqual(t, cfg.Play.StartFEN, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		format     string
		wantFormat config.OutputFormat
		wantErr    bool
	}{
		{"inferred parquet", "games.parquet", "", config.FormatParquet, false},
		{"inferred jsonl", "games.jsonl", "auto", config.FormatJSONL, false},
		{"explicit format", "games.out", "jsonl", config.FormatJSONL, false},
		{"no path", "", "", config.FormatNone, false},
		{"unknown format", "games.parquet", "csv", config.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestore(outputFile, tt.path)()
			defer saveRestore(outputFormat, tt.format)()

			cfg := config.NewConfig()
			err := applyOutputFlags(cfg)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			got, err := cfg.Output.ResolvedFormat()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.wantFormat)
		})
	}
}

func TestApplyAnnotationFlags(t *testing.T) {
	defer saveRestore(addFEN, true)()
	defer saveRestore(addTiming, true)()
	defer saveRestore(noSnapshot, true)()
	defer saveRestore(noHash, false)()

	cfg := config.NewConfig()
	applyAnnotationFlags(cfg)
	testutil.AssertEqual(t, *cfg.Annotation, config.AnnotationConfig{
		AddFEN:    true,
		AddTiming: true,
		AddHash:   true,
	})
}

func TestApplyDuplicateFlags(t *testing.T) {
	t.Run("duplicate file implies detection", func(t *testing.T) {
		defer saveRestore(duplicateFile, "dups.txt")()
		cfg := config.NewConfig()
		applyDuplicateFlags(cfg)
		testutil.AssertTrue(t, cfg.Duplicate.Detect)
	})

	t.Run("check file implies detection", func(t *testing.T) {
		defer saveRestore(checkFile, "earlier.parquet")()
		cfg := config.NewConfig()
		applyDuplicateFlags(cfg)
		testutil.AssertTrue(t, cfg.Duplicate.Detect)
		testutil.AssertEqual(t, cfg.Duplicate.CheckFile, "earlier.parquet")
		testutil.AssertNoError(t, cfg.Validate())
	})

	t.Run("exact with capacity", func(t *testing.T) {
		defer saveRestore(detectDuplicates, true)()
		defer saveRestore(exactDuplicates, true)()
		defer saveRestore(duplicateCapacity, 100)()
		cfg := config.NewConfig()
		applyDuplicateFlags(cfg)
		testutil.AssertTrue(t, cfg.Duplicate.Detect)
		testutil.AssertTrue(t, cfg.Duplicate.ExactMatch)
		testutil.AssertEqual(t, cfg.Duplicate.MaxGames, 100)
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"verbose", false, true, 2},
		{"quiet", true, false, 0},
		{"quiet wins", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestore(quiet, tt.quiet)()
			defer saveRestore(verbose, tt.verbose)()
			cfg := config.NewConfig()
			testutil.AssertNoError(t, applyFlags(cfg))
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}

func TestApplyFlags_Workers(t *testing.T) {
	t.Run("explicit count", func(t *testing.T) {
		defer saveRestore(workers, 3)()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyFlags(cfg))
		testutil.AssertEqual(t, cfg.Workers, 3)
	})

	t.Run("watch uses one worker", func(t *testing.T) {
		defer saveRestore(workers, 8)()
		defer saveRestore(watch, true)()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyFlags(cfg))
		testutil.AssertEqual(t, cfg.Workers, 1)
		testutil.AssertTrue(t, cfg.Play.Watch)
	})
}
