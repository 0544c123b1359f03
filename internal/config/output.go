package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// OutputFormat selects how ply records are stored.
type OutputFormat int

const (
	FormatAuto    OutputFormat = iota // Inferred from the output path extension
	FormatParquet                     // Parquet, zstd compressed
	FormatJSONL                       // One JSON object per line
	FormatNone                        // Records are not stored
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatParquet:
		return "parquet"
	case FormatJSONL:
		return "jsonl"
	case FormatNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseOutputFormat parses a format name as accepted on the command line.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "parquet":
		return FormatParquet, nil
	case "jsonl", "json":
		return FormatJSONL, nil
	case "none":
		return FormatNone, nil
	}
	return FormatAuto, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to storing and showing games.
type OutputConfig struct {
	// Path is the record file. Empty means records are not stored.
	Path string

	// Format of the record file.
	Format OutputFormat

	// ShowBoard prints the final position of each game to OutputFile.
	ShowBoard bool

	// BatchSize is the number of games buffered before rows are flushed.
	BatchSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    FormatAuto,
		BatchSize: 64,
	}
}

// ResolvedFormat returns the concrete format, inferring it from the path
// extension when Format is FormatAuto.
func (o *OutputConfig) ResolvedFormat() (OutputFormat, error) {
	if o.Path == "" {
		return FormatNone, nil
	}
	if o.Format != FormatAuto {
		return o.Format, nil
	}
	return InferFormat(o.Path)
}

// InferFormat returns the record format for a file extension.
func InferFormat(path string) (OutputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet, nil
	case ".jsonl", ".json", ".ndjson":
		return FormatJSONL, nil
	}
	return FormatAuto, fmt.Errorf("cannot infer format of %q: %w", path, errors.ErrInvalidConfig)
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d: %w", o.BatchSize, errors.ErrInvalidConfig)
	}
	_, err := o.ResolvedFormat()
	return err
}
