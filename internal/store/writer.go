package store

import (
	"fmt"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Writer receives the rows of finished games.
type Writer interface {
	// WriteRows appends the rows of one game.
	WriteRows(rows []PlyRow) error

	// Close flushes buffered rows and finalizes the file.
	Close() error
}

// Open creates a writer for path in the given concrete format.
// FormatNone yields a writer that discards everything.
func Open(path string, format config.OutputFormat) (Writer, error) {
	switch format {
	case config.FormatParquet:
		return NewParquetWriter(path)
	case config.FormatJSONL:
		return NewJSONLWriter(path)
	case config.FormatNone:
		return Discard{}, nil
	}
	return nil, fmt.Errorf("no writer for format %v: %w", format, errors.ErrInvalidConfig)
}

// ReadFile reads every row of a record file written by Open, choosing the
// format from the file extension.
func ReadFile(path string) ([]PlyRow, error) {
	format, err := config.InferFormat(path)
	if err != nil {
		return nil, err
	}
	if format == config.FormatParquet {
		return ReadParquet(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSONL(f)
}

// Discard is a Writer that drops all rows.
type Discard struct{}

// WriteRows implements Writer.
func (Discard) WriteRows([]PlyRow) error { return nil }

// Close implements Writer.
func (Discard) Close() error { return nil }
