package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects PGN or JSON output
	Format OutputFormat

	// MaxLineLength is the maximum movetext line length, 0 for one line
	MaxLineLength uint

	// Newline separates header lines and wrapped movetext lines
	Newline string

	// KeepComments controls whether comments are kept in output
	KeepComments bool

	// OutputFilename is the file games are written to, "" for stdout
	OutputFilename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        PGN,
		MaxLineLength: 80,
		Newline:       "\n",
		KeepComments:  true,
	}
}
