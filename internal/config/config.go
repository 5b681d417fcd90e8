// Package config provides configuration for the chesscore command.
package config

import (
	"io"
	"os"
)

// OutputFormat selects how processed games are written.
type OutputFormat int

const (
	PGN  OutputFormat = iota // Canonical PGN re-emitted from the replayed game
	JSON                     // One JSON document holding every game
)

func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "pgn"
}

// Encoding selects how input bytes are decoded.
type Encoding int

const (
	EncodingAuto   Encoding = iota // UTF-8 unless the input is not valid UTF-8, then Latin-1
	EncodingUTF8                   // Input is UTF-8
	EncodingLatin1                 // Input is ISO 8859-1
)

// ParseEncoding parses an -encoding flag value.
func ParseEncoding(s string) (Encoding, bool) {
	switch s {
	case "auto", "":
		return EncodingAuto, true
	case "utf8", "utf-8":
		return EncodingUTF8, true
	case "latin1", "iso-8859-1":
		return EncodingLatin1, true
	}
	return EncodingAuto, false
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=per-game commentary

	// Loading
	StrictMoves bool     // Reject non-canonical SAN while replaying
	Encoding    Encoding // Input decoding
	Workers     int      // Parallel game loaders, 0 = one per CPU

	// Position commands
	StartFEN   string
	PerftDepth int
	Divide     bool
	ListMoves  bool
	ShowBoard  bool

	Output     *OutputConfig
	Duplicate  *DuplicateConfig
	Filter     *FilterConfig
	Annotation *AnnotationConfig

	CurrentInputFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Encoding:   EncodingAuto,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		Annotation: NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream processed games are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}
