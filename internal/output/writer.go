package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/selfplay"
)

// GameWriter is the interface for presenting finished games.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *selfplay.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes a one-line summary per game, optionally followed by a
// diagram of the final position.
type TextWriter struct {
	w         io.Writer
	showBoard bool
	style     BoardStyle
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, showBoard bool, style BoardStyle) *TextWriter {
	return &TextWriter{w: w, showBoard: showBoard, style: style}
}

// WriteGame writes the game summary.
func (tw *TextWriter) WriteGame(rec *selfplay.Record) error {
	if _, err := fmt.Fprintln(tw.w, GameLine(rec)); err != nil {
		return err
	}
	if tw.showBoard && rec.Final != nil {
		_, err := fmt.Fprintln(tw.w, DumpBoard(rec.Final, tw.style))
		return err
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op.
func (tw *TextWriter) Close() error { return nil }

// GameLine formats a one-line game summary.
func GameLine(rec *selfplay.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "game %d %s %s %s after %d plies", rec.GameNo, rec.GameID, rec.Result(), rec.Outcome, len(rec.Plies))
	if rec.Truncated {
		sb.WriteString(" (ply limit)")
	}
	if rec.Duplicate {
		sb.WriteString(" (duplicate)")
	}
	return sb.String()
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*selfplay.Record
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games until Flush.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *selfplay.Record) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(GameToJSON(rec))
	}
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteSummary writes the batch totals.
func WriteSummary(w io.Writer, sum selfplay.Summary) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "games:      %d\n", sum.Games)
	fmt.Fprintf(&sb, "plies:      %d\n", sum.Plies)
	if sum.Games > 0 {
		fmt.Fprintf(&sb, "avg plies:  %.1f\n", float64(sum.Plies)/float64(sum.Games))
	}

	states := make([]chess.GameState, 0, len(sum.Outcomes))
	for s := range sum.Outcomes {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	for _, s := range states {
		fmt.Fprintf(&sb, "  %-20s %d\n", s, sum.Outcomes[s])
	}

	for _, r := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		if n := sum.Results[r]; n > 0 {
			fmt.Fprintf(&sb, "  %-20s %d\n", r, n)
		}
	}
	if sum.Truncated > 0 {
		fmt.Fprintf(&sb, "truncated:  %d\n", sum.Truncated)
	}
	if sum.Duplicates > 0 {
		fmt.Fprintf(&sb, "duplicates: %d\n", sum.Duplicates)
	}
	if sum.Failed > 0 {
		fmt.Fprintf(&sb, "failed:     %d\n", sum.Failed)
	}
	fmt.Fprintf(&sb, "elapsed:    %v\n", sum.Elapsed)
	_, err := io.WriteString(w, sb.String())
	return err
}
