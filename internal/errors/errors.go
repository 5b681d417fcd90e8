// Package errors provides sentinel errors and error types for chesscore.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates a move that cannot be played in the position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrNullMoveInCheck indicates a null move attempted while in check.
	ErrNullMoveInCheck = errors.New("Null move not allowed when in check")

	// ErrParseFailure indicates a PGN syntax error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidPGN indicates PGN that parses but cannot be replayed.
	ErrInvalidPGN = errors.New("invalid PGN")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateGame indicates a duplicate game was detected.
	ErrDuplicateGame = errors.New("duplicate game")

	// ErrMissingTag indicates a required PGN tag is missing.
	ErrMissingTag = errors.New("missing required tag")
)

// FENError reports the first validation criterion a FEN string failed.
type FENError struct {
	Reason string
}

func (e *FENError) Error() string {
	return e.Reason
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// MoveError reports a move that does not match any legal move.
type MoveError struct {
	Move string
}

func (e *MoveError) Error() string {
	return "Invalid move: " + e.Move
}

// Unwrap returns ErrInvalidMove.
func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

// PGNError reports a game whose text parsed but whose content is unusable.
type PGNError struct {
	Reason string
	Move   string // offending move, if any
	Ply    int    // 1-based ply of the offending move (0 if not applicable)
	Err    error  // ErrInvalidPGN or ErrMissingTag
}

func (e *PGNError) Error() string {
	return e.Reason
}

// Unwrap returns the underlying sentinel.
func (e *PGNError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidPGN
	}
	return e.Err
}

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a PGN syntax error at the furthest position the
// parser reached.
type ParseError struct {
	Message  string   // Full human-readable message
	Expected []string // Sorted, deduplicated descriptions of what could appear
	Found    string   // Text found at the failure position
	AtEOF    bool     // True when the failure is at end of input
	Offset   int      // 0-based byte offset
	Line     int      // Line number (1-based)
	Column   int      // Column number (1-based)
	File     string   // Source file name (optional)
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "parse error"
	}
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, msg)
	}
	return msg
}

// Unwrap returns ErrParseFailure.
func (e *ParseError) Unwrap() error {
	return ErrParseFailure
}

// Format renders the error with the offending source line and a caret
// under the failure column.
func (e *ParseError) Format(source string) string {
	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(e.Message)
	sb.WriteByte('\n')

	name := e.File
	if name == "" {
		name = "<input>"
	}
	fmt.Fprintf(&sb, " --> %s:%d:%d\n", name, e.Line, e.Column)

	lines := strings.Split(source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return sb.String()
	}
	text := strings.TrimRight(lines[e.Line-1], "\r")
	num := strconv.Itoa(e.Line)
	pad := strings.Repeat(" ", len(num))

	fmt.Fprintf(&sb, "%s |\n", pad)
	fmt.Fprintf(&sb, "%s | %s\n", num, text)
	caretCol := e.Column - 1
	if caretCol < 0 {
		caretCol = 0
	}
	fmt.Fprintf(&sb, "%s | %s^", pad, strings.Repeat(" ", caretCol))
	return sb.String()
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
