package config

import "io"

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

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithNewline sets the line separator used in PGN output.
func (b *ConfigBuilder) WithNewline(newline string) *ConfigBuilder {
	b.cfg.Output.Newline = newline
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateDatabase keeps the duplicate index in dir across runs.
func (b *ConfigBuilder) WithDuplicateDatabase(dir string) *ConfigBuilder {
	b.cfg.Duplicate.DatabaseDir = dir
	return b
}

// WithMoveBounds sets move bounds for filtering.
func (b *ConfigBuilder) WithMoveBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckMoveBounds = true
	b.cfg.Filter.LowerMoveBound = lower
	b.cfg.Filter.UpperMoveBound = upper
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithFENComments enables FEN comments.
func (b *ConfigBuilder) WithFENComments(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddFENComments = enabled
	return b
}

// WithHashTag enables hashcode tags.
func (b *ConfigBuilder) WithHashTag(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHashTag = enabled
	return b
}

// WithStrictMoves rejects non-canonical SAN while loading games.
func (b *ConfigBuilder) WithStrictMoves(strict bool) *ConfigBuilder {
	b.cfg.StrictMoves = strict
	return b
}

// WithWorkers sets the number of parallel game loaders.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// KeepComments controls whether comments are kept.
func (b *ConfigBuilder) KeepComments(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepComments = keep
	return b
}
