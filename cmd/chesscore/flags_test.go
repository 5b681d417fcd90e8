package main

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlagsDefaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Output.Format != config.PGN {
		t.Errorf("Format = %v; want pgn", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.KeepComments {
		t.Error("KeepComments = false; want true")
	}
	if cfg.Filter.Active() {
		t.Error("no filter should be active by default")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
	if hasPositionCommand(cfg) {
		t.Error("no position command by default")
	}
}

func TestApplyContentFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(noComments, true)()
	defer saveRestoreInt(lineLength, 0)()

	cfg := config.NewConfig()
	applyContentFlags(cfg)
	if cfg.Output.Format != config.JSON {
		t.Errorf("Format = %v; want json", cfg.Output.Format)
	}
	if cfg.Output.KeepComments {
		t.Error("KeepComments = true; want false")
	}
	if cfg.Output.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d; want 0", cfg.Output.MaxLineLength)
	}
}

func TestApplyMoveBoundsFlags(t *testing.T) {
	tests := []struct {
		name       string
		min, max   int
		wantActive bool
		wantLower  uint
		wantUpper  uint
	}{
		{"none", 0, 0, false, 0, 0},
		{"minimum only", 10, 0, true, 10, ^uint(0)},
		{"maximum only", 0, 40, true, 0, 40},
		{"both", 20, 30, true, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(minMoves, tt.min)()
			defer saveRestoreInt(maxMoves, tt.max)()

			cfg := config.NewConfig()
			applyMoveBoundsFlags(cfg)
			if cfg.Filter.CheckMoveBounds != tt.wantActive {
				t.Fatalf("CheckMoveBounds = %v; want %v", cfg.Filter.CheckMoveBounds, tt.wantActive)
			}
			if cfg.Filter.LowerMoveBound != tt.wantLower || cfg.Filter.UpperMoveBound != tt.wantUpper {
				t.Errorf("bounds = %d..%d; want %d..%d",
					cfg.Filter.LowerMoveBound, cfg.Filter.UpperMoveBound, tt.wantLower, tt.wantUpper)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestApplyPositionFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/K1k5 w - - 0 1")()
	defer saveRestoreInt(perft, 3)()
	defer saveRestoreBool(divide, true)()

	cfg := config.NewConfig()
	applyPositionFlags(cfg)
	if !hasPositionCommand(cfg) {
		t.Fatal("perft should be a position command")
	}
	if cfg.StartFEN != "8/8/8/8/8/8/8/K1k5 w - - 0 1" || cfg.PerftDepth != 3 || !cfg.Divide {
		t.Errorf("position flags not applied: %+v", cfg)
	}
}

func TestApplyFlagsEncoding(t *testing.T) {
	t.Run("latin1", func(t *testing.T) {
		defer saveRestoreString(encoding, "latin1")()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Encoding != config.EncodingLatin1 {
			t.Errorf("Encoding = %v; want latin1", cfg.Encoding)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		defer saveRestoreString(encoding, "ebcdic")()
		if err := applyFlags(config.NewConfig()); err == nil {
			t.Error("applyFlags() should reject an unknown encoding")
		}
	})
}

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreBool(positionOnly, true)()
	defer saveRestoreString(databaseDir, "/tmp/index")()
	defer saveRestoreInt(duplicateCapacity, 500)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)
	d := cfg.Duplicate
	if !d.Suppress || d.ExactMatch || d.DatabaseDir != "/tmp/index" || d.MaxCapacity != 500 {
		t.Errorf("duplicate flags not applied: %+v", d)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestQuietFlag(t *testing.T) {
	defer saveRestoreBool(quiet, true)()
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
	}
}
