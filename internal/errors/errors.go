// Package errors provides sentinel errors and error types for the draughts engine.
// Callers inspect them with Is and As, which forward to the standard library.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition indicates a malformed board position string.
	ErrInvalidPosition = errors.New("invalid position string")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNothingToUndo indicates an undo request on an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NotationKind identifies which FEN check rejected a string.
type NotationKind int

const (
	NotationEmpty NotationKind = iota + 1
	NotationMissingColon
	NotationColonCount
	NotationSideToMove
	NotationColours
	NotationNotInteger
	NotationSquareRange
)

var notationMessages = map[NotationKind]string{
	NotationEmpty:        "empty fen position",
	NotationMissingColon: "fen position has not colon at second position",
	NotationColonCount:   "fen position has not 2 colons",
	NotationSideToMove:   "side to move of fen position not valid",
	NotationColours:      "color(s) of sides of fen position not valid",
	NotationNotInteger:   "squares of fen position not integer",
	NotationSquareRange:  "squares of fen position not valid",
}

// String returns the human readable message for the kind.
func (k NotationKind) String() string {
	if msg, ok := notationMessages[k]; ok {
		return msg
	}
	return "unknown fen error"
}

// NotationError reports a FEN string rejected by validation.
type NotationError struct {
	Kind NotationKind // Which check failed
	FEN  string       // The string as supplied by the caller
}

// Error returns the kind message followed by the offending FEN.
func (e *NotationError) Error() string {
	if e.FEN == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.FEN)
}

// Unwrap returns ErrInvalidFEN so every NotationError matches it with Is.
func (e *NotationError) Unwrap() error {
	return ErrInvalidFEN
}

// GameError wraps errors with the context of a stored game.
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Identifier of the game in a registry (if known)
	PlyNum   int    // Ply the error refers to (0 if not applicable)
	MoveText string // The move that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
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
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
