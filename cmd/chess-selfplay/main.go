// chess-selfplay plays random chess games against itself and records every move.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/selfplay"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-selfplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and duplicate files
	setupLogFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if cfg.Play.Watch {
		err = runWatch(ctx, cfg)
	} else {
		err = runBatch(ctx, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// boardStyle picks the board style for the -plain flag.
func boardStyle() output.BoardStyle {
	if *plainBoard {
		return output.PlainBoardStyle()
	}
	return output.DefaultBoardStyle()
}

// newGameWriter returns the writer for finished games, or nil when games
// are not shown.
func newGameWriter(cfg *config.Config) output.GameWriter {
	switch {
	case *jsonOutput:
		return output.NewJSONWriter(cfg.OutputFile)
	case cfg.Output.ShowBoard || cfg.Verbosity > 1:
		return output.NewTextWriter(cfg.OutputFile, cfg.Output.ShowBoard, boardStyle())
	}
	return nil
}

// runBatch plays the configured games and stores their records.
func runBatch(ctx context.Context, cfg *config.Config) error {
	keys, err := hashing.LoadOrCreateKeyTable(cfg.KeyFile)
	if err != nil {
		return err
	}

	format, err := cfg.Output.ResolvedFormat()
	if err != nil {
		return err
	}
	records, err := store.Open(cfg.Output.Path, format)
	if err != nil {
		return err
	}

	runner := selfplay.NewRunner(cfg, keys, records)
	if cfg.Duplicate.CheckFile != "" {
		if _, err := runner.LoadCheckFile(cfg.Duplicate.CheckFile); err != nil {
			records.Close() //nolint:errcheck,gosec // G104: cleanup on exit
			return err
		}
	}
	gw := newGameWriter(cfg)
	var writeErr error
	if gw != nil {
		runner.OnGame(func(rec *selfplay.Record) {
			if err := gw.WriteGame(rec); err != nil && writeErr == nil {
				writeErr = err
			}
		})
	}

	sum, runErr := runner.Run(ctx)
	closeErr := records.Close()
	if gw != nil {
		if err := gw.Close(); err != nil && writeErr == nil {
			writeErr = err
		}
	}

	if cfg.Verbosity > 0 {
		reportSummary(cfg.LogFile, cfg.Output.Path, format, sum)
	}

	if selfplay.IsInterrupted(runErr) {
		cfg.Logf(1, "interrupted after %d games", sum.Games)
		runErr = nil
	}
	for _, err := range []error{runErr, closeErr, writeErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// reportSummary prints the batch totals and where the records went.
func reportSummary(w io.Writer, path string, format config.OutputFormat, sum selfplay.Summary) {
	output.WriteSummary(w, sum) //nolint:errcheck,gosec // G104: best-effort report
	if format != config.FormatNone {
		fmt.Fprintf(w, "records:    %s (%s)\n", path, format)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-selfplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays random chess games and records every move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRecord formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  auto     From the -o extension (default)\n")
	fmt.Fprintf(os.Stderr, "  parquet  Parquet, zstd compressed\n")
	fmt.Fprintf(os.Stderr, "  jsonl    One JSON object per ply\n")
	fmt.Fprintf(os.Stderr, "  none     Do not store records\n")
}
