package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chesscore/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != PGN {
		t.Errorf("Format = %v, want %v", cfg.Format, PGN)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if cfg.Newline != "\n" {
		t.Errorf("Newline = %q, want \\n", cfg.Newline)
	}
	if !cfg.KeepComments {
		t.Error("KeepComments should be true by default")
	}
}

// TestFilterConfig_Defaults verifies FilterConfig has sensible defaults
func TestFilterConfig_Defaults(t *testing.T) {
	cfg := NewFilterConfig()

	if cfg.Active() {
		t.Error("no filter should be active by default")
	}
	if cfg.MatchCheckmate || cfg.MatchStalemate || cfg.MatchDraw {
		t.Error("match conditions should be false by default")
	}
}

// TestFilterConfig_Validate verifies move bound validation
func TestFilterConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     FilterConfig
		wantErr bool
	}{
		{"disabled", FilterConfig{}, false},
		{"ordered bounds", FilterConfig{CheckMoveBounds: true, LowerMoveBound: 10, UpperMoveBound: 40}, false},
		{"equal bounds", FilterConfig{CheckMoveBounds: true, LowerMoveBound: 20, UpperMoveBound: 20}, false},
		{"reversed bounds", FilterConfig{CheckMoveBounds: true, LowerMoveBound: 40, UpperMoveBound: 10}, true},
		{"reversed but unchecked", FilterConfig{LowerMoveBound: 40, UpperMoveBound: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if !cfg.ExactMatch {
		t.Error("ExactMatch should be true by default")
	}
	if cfg.DatabaseDir != "" {
		t.Errorf("DatabaseDir = %q, want empty", cfg.DatabaseDir)
	}
}

func TestDuplicateConfig_Validate(t *testing.T) {
	if err := (&DuplicateConfig{MaxCapacity: -1}).Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("negative capacity: got %v", err)
	}
	if err := (&DuplicateConfig{DatabaseDir: "/tmp/x"}).Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("database without suppression: got %v", err)
	}
	if err := (&DuplicateConfig{DatabaseDir: "/tmp/x", Suppress: true}).Validate(); err != nil {
		t.Errorf("valid config: got %v", err)
	}
}

// TestAnnotationConfig_Defaults verifies AnnotationConfig defaults
func TestAnnotationConfig_Defaults(t *testing.T) {
	cfg := NewAnnotationConfig()
	if cfg.AddFENComments || cfg.AddHashTag || cfg.AddPlyCount {
		t.Error("annotations should be disabled by default")
	}
}

// TestConfig_SubConfigs verifies that Config wires its sub-configs
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != PGN {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, PGN)
	}
	if cfg.Filter.CheckMoveBounds {
		t.Error("Filter.CheckMoveBounds should be false")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false")
	}
	if cfg.Annotation.AddFENComments {
		t.Error("Annotation.AddFENComments should be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want Encoding
		ok   bool
	}{
		{"auto", EncodingAuto, true},
		{"", EncodingAuto, true},
		{"utf8", EncodingUTF8, true},
		{"utf-8", EncodingUTF8, true},
		{"latin1", EncodingLatin1, true},
		{"ebcdic", EncodingAuto, false},
	}
	for _, tt := range tests {
		got, ok := ParseEncoding(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseEncoding(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithMaxLineLength(120).
		WithNewline("\r\n").
		WithDuplicateSuppression(true).
		WithDuplicateDatabase("games.db").
		WithMoveBounds(5, 30).
		WithStrictMoves(true).
		WithWorkers(3).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if cfg.Output.Newline != "\r\n" {
		t.Errorf("Newline = %q", cfg.Output.Newline)
	}
	if !cfg.Duplicate.Suppress || cfg.Duplicate.DatabaseDir != "games.db" {
		t.Errorf("Duplicate = %+v", cfg.Duplicate)
	}
	if !cfg.Filter.CheckMoveBounds || cfg.Filter.LowerMoveBound != 5 || cfg.Filter.UpperMoveBound != 30 {
		t.Errorf("Filter = %+v", cfg.Filter)
	}
	if !cfg.StrictMoves || cfg.Workers != 3 {
		t.Errorf("StrictMoves = %v, Workers = %d", cfg.StrictMoves, cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
