// Package errors provides sentinel errors and error types for the rules engine.
// It defines the move rejection reasons and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Move rejection reasons. A rejected move never changes game state and
// the caller may always retry with a different move.
var (
	// ErrUnknownPiece indicates no living piece carries the requested identity.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrNotYourTurn indicates the piece belongs to the side not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrOutOfBounds indicates the destination lies off the board.
	ErrOutOfBounds = errors.New("destination out of bounds")

	// ErrShapeInvalid indicates the piece cannot move with that geometry.
	ErrShapeInvalid = errors.New("invalid move shape")

	// ErrPathBlocked indicates a piece stands between origin and destination.
	ErrPathBlocked = errors.New("path blocked")

	// ErrDestinationOccupied indicates the destination holds a piece of the mover's colour.
	ErrDestinationOccupied = errors.New("destination occupied by same colour")

	// ErrCastlingRightLost indicates the king or chosen rook has moved, or the rook is gone.
	ErrCastlingRightLost = errors.New("castling right lost")

	// ErrCastlingPathBlocked indicates a piece stands between king and rook.
	ErrCastlingPathBlocked = errors.New("castling path blocked")

	// ErrCastlingPathAttacked indicates the king would start in, pass through or land in check.
	ErrCastlingPathAttacked = errors.New("castling path attacked")

	// ErrMovesIntoCheck indicates the move would leave the mover's king in check.
	ErrMovesIntoCheck = errors.New("move leaves king in check")
)

// Other sentinel errors.
var (
	// ErrGameOver indicates a move was requested after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates a malformed move script line or direction code.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownGame indicates a session name that is not registered.
	ErrUnknownGame = errors.New("unknown game")
)

// RejectionReasons lists every move rejection sentinel, in documentation order.
var RejectionReasons = []error{
	ErrUnknownPiece,
	ErrNotYourTurn,
	ErrOutOfBounds,
	ErrShapeInvalid,
	ErrPathBlocked,
	ErrDestinationOccupied,
	ErrCastlingRightLost,
	ErrCastlingPathBlocked,
	ErrCastlingPathAttacked,
	ErrMovesIntoCheck,
}

// IsRejection reports whether err is (or wraps) one of the move rejection reasons.
func IsRejection(err error) bool {
	for _, reason := range RejectionReasons {
		if errors.Is(err, reason) {
			return true
		}
	}
	return false
}

// MoveError wraps a rejection reason with the context of the move that
// caused it. It implements the error interface and supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err     error  // The rejection reason
	PieceID string // Identity of the piece the move named (if known)
	From    string // Origin square, algebraic (if resolved)
	To      string // Destination square, algebraic (if resolved)
	Ply     int    // Half-move number the move would have been (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.PieceID != "" {
		parts = append(parts, fmt.Sprintf("piece %s", e.PieceID))
	}
	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move rejected"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for move scripts and FEN strings.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
