package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
)

func testRecord() *GameRecord {
	return &GameRecord{
		Headers: []chess.TagPair{
			{Name: "Event", Value: "Test"},
			{Name: "White", Value: "Fischer"},
			{Name: "Black", Value: "Spassky"},
			{Name: "Result", Value: "1-0"},
		},
		Moves: []MoveRecord{
			{Colour: chess.White, MoveNumber: 1, SAN: "e4", LAN: "e2e4", From: "e2", To: "e4", Piece: chess.Pawn,
				FEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", Comment: strPtr("King's pawn")},
			{Colour: chess.Black, MoveNumber: 1, SAN: "d5", LAN: "d7d5", From: "d7", To: "d5", Piece: chess.Pawn},
			{Colour: chess.White, MoveNumber: 2, SAN: "exd5", LAN: "e4d5", From: "e4", To: "d5", Piece: chess.Pawn, Captured: chess.Pawn},
		},
		InitialFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
}

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewPGNWriter(&buf, cfg)
	if err := writer.WriteGame(testRecord()); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	want := "[Event \"Test\"]\n[White \"Fischer\"]\n[Black \"Spassky\"]\n[Result \"1-0\"]\n\n" +
		"1. e4 {King's pawn} d5 2. exd5 1-0\n\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

// TestPGNWriter_DropsComments verifies comments are removed when not kept
func TestPGNWriter_DropsComments(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().KeepComments(false).Build()

	if err := NewPGNWriter(&buf, cfg).WriteGame(testRecord()); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if strings.Contains(buf.String(), "{") {
		t.Errorf("comment kept in output: %q", buf.String())
	}
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewJSONWriter(&buf, cfg)
	if err := writer.WriteGame(testRecord()); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("batch writer wrote before Flush")
	}

	// Flush to ensure all output is written
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(decoded.Games))
	}
	game := decoded.Games[0]
	if game.Tags["White"] != "Fischer" || game.Tags["Site"] != "?" {
		t.Errorf("tags = %v", game.Tags)
	}
	if game.Result != "1-0" || game.PlyCount != 3 {
		t.Errorf("result = %q, plyCount = %d", game.Result, game.PlyCount)
	}
	if len(game.Moves) != 3 {
		t.Fatalf("got %d moves, want 3", len(game.Moves))
	}
	first, second, third := game.Moves[0], game.Moves[1], game.Moves[2]
	if first.MoveNumber != 1 || first.Color != "white" || first.UCI != "e2e4" || first.Comment != "King's pawn" {
		t.Errorf("first move = %+v", first)
	}
	if second.MoveNumber != 0 || second.Color != "black" {
		t.Errorf("second move = %+v", second)
	}
	if third.Captured != "pawn" || third.Piece != "pawn" || third.Promotion != "" {
		t.Errorf("third move = %+v", third)
	}
}

// TestJSONWriterSingle verifies single mode writes each game immediately
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, config.NewConfig())

	if err := writer.WriteGame(testRecord()); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	var game JSONGame
	if err := json.Unmarshal(buf.Bytes(), &game); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if game.InitialFEN == "" || len(game.Moves) != 3 {
		t.Errorf("game = %+v", game)
	}
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	// Verify PGNWriter implements GameWriter
	var _ GameWriter = NewPGNWriter(&buf, cfg)

	// Verify JSONWriter implements GameWriter
	var _ GameWriter = NewJSONWriter(&buf, cfg)

	if _, ok := NewGameWriter(&buf, cfg).(*PGNWriter); !ok {
		t.Error("default format should select the PGN writer")
	}
	cfg.Output.Format = config.JSON
	if _, ok := NewGameWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON format should select the JSON writer")
	}
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewJSONWriter(&buf, cfg)
	if err := writer.WriteGame(&GameRecord{}); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	// Output should have content after close
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

// TestPGNWriter_Flush verifies Flush and Close work correctly
func TestPGNWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewPGNWriter(&buf, cfg)
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
