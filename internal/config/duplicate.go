package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Detect reports games whose final position was already reached by an
	// earlier game of the run.
	Detect bool

	// ExactMatch also requires the same number of plies.
	ExactMatch bool

	// MaxGames bounds the number of stored final positions (0 = unbounded).
	MaxGames int

	// CheckFile is a record file from an earlier run whose final positions
	// count as already seen.
	CheckFile string

	// DuplicateFile receives one line per duplicate game.
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxGames < 0 {
		return fmt.Errorf("negative duplicate capacity %d: %w", d.MaxGames, errors.ErrInvalidConfig)
	}
	if d.CheckFile != "" {
		if !d.Detect {
			return fmt.Errorf("check file %s needs duplicate detection: %w", d.CheckFile, errors.ErrInvalidConfig)
		}
		if _, err := InferFormat(d.CheckFile); err != nil {
			return err
		}
	}
	return nil
}
