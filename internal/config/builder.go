package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Play.Games = n
	return b
}

// WithWorkers sets the number of parallel games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithMaxPlies sets the per-game ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = n
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Play.StartFEN = fen
	return b
}

// WithWatch enables the terminal viewer with the given turn delay.
func (b *ConfigBuilder) WithWatch(enabled bool, delay time.Duration) *ConfigBuilder {
	b.cfg.Play.Watch = enabled
	b.cfg.Play.Delay = delay
	return b
}

// WithOutputPath sets the record file.
func (b *ConfigBuilder) WithOutputPath(path string) *ConfigBuilder {
	b.cfg.Output.Path = path
	return b
}

// WithOutputFormat sets the record format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBatchSize sets the number of games buffered per flush.
func (b *ConfigBuilder) WithBatchSize(n int) *ConfigBuilder {
	b.cfg.Output.BatchSize = n
	return b
}

// WithBoardDiagrams prints the final board of each game.
func (b *ConfigBuilder) WithBoardDiagrams(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithDuplicateDetection enables duplicate final-position reporting.
func (b *ConfigBuilder) WithDuplicateDetection(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithCheckFile preloads duplicate detection from an earlier record file.
func (b *ConfigBuilder) WithCheckFile(path string) *ConfigBuilder {
	b.cfg.Duplicate.Detect = true
	b.cfg.Duplicate.CheckFile = path
	return b
}

// WithFEN adds FEN strings to ply records.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddFEN = enabled
	return b
}

// WithTiming adds turn durations to ply records.
func (b *ConfigBuilder) WithTiming(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddTiming = enabled
	return b
}

// WithKeyFile sets the position hash key file.
func (b *ConfigBuilder) WithKeyFile(path string) *ConfigBuilder {
	b.cfg.KeyFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
