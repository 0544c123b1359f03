// Package errors provides sentinel errors and error types for the chess engine.
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
	// ErrVacantSquare indicates an attempt to move a piece from a square the
	// board believes is empty. It signals an internal consistency fault.
	ErrVacantSquare = errors.New("tried to move piece from vacant square")

	// ErrKingCapture indicates a king was about to be captured outside
	// speculative legality testing. It signals a legality filter defect.
	ErrKingCapture = errors.New("tried to capture a king")

	// ErrIllegalMove indicates a proposed move that is not in the legal
	// move enumeration for the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoMove indicates a strategy returned the "no move" sentinel.
	ErrNoMove = errors.New("no move proposed")

	// ErrInvalidSnapshot indicates a malformed board snapshot.
	ErrInvalidSnapshot = errors.New("invalid board snapshot")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidKeyTable indicates a position hash key table of the wrong size.
	ErrInvalidKeyTable = errors.New("invalid key table")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InvariantError reports a violated engine invariant together with the
// turn and move being executed. The board is left unchanged.
type InvariantError struct {
	Err  error  // The underlying sentinel
	Turn int    // Board turn counter when the violation was detected
	Move string // The move being executed
}

// Error returns a formatted error message including the turn and move.
func (e *InvariantError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// IsInvariantViolation reports whether err is a fatal engine invariant
// violation as opposed to a recoverable condition.
func IsInvariantViolation(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// GameError wraps errors with game context, including the game ID,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	GameNo int    // 1-based game number within a batch (0 if not applicable)
	Ply    int    // Ply number where error occurred (0 if not applicable)
	Move   string // The move that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameNo > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNo))
	}
	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("id %s", e.GameID))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		context = "game"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
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
