// Package errors provides sentinel errors and error types for dreamchess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMoveSyntax indicates textual move input that is not of the
	// form "e2-e4" or "e7-e8=Q".
	ErrInvalidMoveSyntax = errors.New("invalid move syntax")

	// ErrIllegalMove indicates a move that violates chess rules or leaves
	// the mover's king in check.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIndexOutOfRange indicates access to a square outside 0-63.
	ErrIndexOutOfRange = errors.New("square index out of range")

	// ErrUnknownPieceChar indicates a piece letter outside PNBRQK/pnbrqk.
	ErrUnknownPieceChar = errors.New("unknown piece character")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move attempted after the game has ended.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps errors with move context, including the ply at which the
// move was attempted and the raw move text. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number of the attempted move (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	default:
		return "move error"
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IndexError reports a square index outside the board. Board accessors panic
// with an *IndexError since out-of-range access is a programming error.
type IndexError struct {
	Index int
}

// Error returns the offending index with the sentinel message.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d", ErrIndexOutOfRange, e.Index)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
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
// It is re-exported so callers importing this package need not also import
// the standard errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
