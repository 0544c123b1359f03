// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Play options
	games    = flag.Int("n", 1, "Number of games to play")
	seed     = flag.Uint64("seed", 0, "Random seed (0 = derive from the clock)")
	maxPlies = flag.Int("maxply", 0, "Stop each game after N plies (0 = play to the end)")
	startFEN = flag.String("fen", "", "Start every game from this FEN position")

	// Watch mode
	watch = flag.Bool("watch", false, "Watch a single game in the terminal")
	delay = flag.Duration("delay", 500*time.Millisecond, "Pause between turns in watch mode")

	// Record output
	outputFile   = flag.String("o", "", "Write per-ply records to this file (.parquet or .jsonl)")
	outputFormat = flag.String("format", "", "Record format: auto, parquet, jsonl, none")
	batchSize    = flag.Int("batch", 64, "Games buffered before records are flushed")

	// Record columns
	addFEN     = flag.Bool("fencolumn", false, "Add the FEN after each move to the records")
	addTiming  = flag.Bool("timing", false, "Add the wall time of each turn to the records")
	noSnapshot = flag.Bool("nosnapshot", false, "Leave the board snapshot out of the records")
	noHash     = flag.Bool("nohash", false, "Leave the position hash out of the records")

	// Game output
	showBoard  = flag.Bool("board", false, "Print the final position of each game")
	plainBoard = flag.Bool("plain", false, "Draw boards without colour, bracketing attacked squares")
	jsonOutput = flag.Bool("J", false, "Print finished games as JSON")

	// Duplicate detection
	detectDuplicates  = flag.Bool("D", false, "Report games ending in an already seen position")
	exactDuplicates   = flag.Bool("exact", false, "Duplicates must also have the same ply count")
	duplicateFile     = flag.String("d", "", "Write duplicate games to this file")
	checkFile         = flag.String("c", "", "Record file of an earlier run whose final positions count as seen")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum stored final positions (0 = unlimited)")

	// Hashing
	keyFile = flag.String("keys", "", "Load or create the position hash keys in this file")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every game")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyPlayFlags(cfg)
	applyAnnotationFlags(cfg)
	applyDuplicateFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *watch {
		cfg.Workers = 1
	}
	cfg.KeyFile = *keyFile

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyPlayFlags configures the games themselves.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.Games = *games
	cfg.Play.Seed = *seed
	cfg.Play.MaxPlies = *maxPlies
	cfg.Play.StartFEN = *startFEN
	cfg.Play.Watch = *watch
	cfg.Play.Delay = *delay
}

// applyOutputFlags configures where records go and how games are shown.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Path = *outputFile
	cfg.Output.Format = format
	cfg.Output.BatchSize = *batchSize
	cfg.Output.ShowBoard = *showBoard
	return nil
}

// applyAnnotationFlags selects the optional record columns.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddFEN = *addFEN
	cfg.Annotation.AddTiming = *addTiming
	cfg.Annotation.AddSnapshot = !*noSnapshot
	cfg.Annotation.AddHash = !*noHash
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = *detectDuplicates || *duplicateFile != "" || *checkFile != ""
	cfg.Duplicate.CheckFile = *checkFile
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxGames = *duplicateCapacity
}
