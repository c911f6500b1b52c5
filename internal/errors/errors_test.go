package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("applying move: %w", ErrPathBlocked)

	if !errors.Is(wrapped, ErrPathBlocked) {
		t.Errorf("errors.Is(wrapped, ErrPathBlocked) = false, want true")
	}
}

// TestSentinelErrors_Distinct verifies no two rejection reasons compare equal
func TestSentinelErrors_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, reason := range RejectionReasons {
		msg := reason.Error()
		if seen[msg] {
			t.Errorf("duplicate rejection message %q", msg)
		}
		seen[msg] = true
	}
	if len(RejectionReasons) != 10 {
		t.Errorf("len(RejectionReasons) = %d, want 10", len(RejectionReasons))
	}
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain rejection", ErrMovesIntoCheck, true},
		{"wrapped in MoveError", &MoveError{Err: ErrCastlingPathAttacked, PieceID: "WKG"}, true},
		{"game over is not a rejection reason", ErrGameOver, false},
		{"parse failure", &ParseError{Err: ErrParseFailure, Line: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRejection(tt.err); got != tt.want {
				t.Errorf("IsRejection(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:     ErrPathBlocked,
				PieceID: "WR1",
				From:    "a1",
				To:      "a5",
				Ply:     12,
			},
			contains: []string{"ply 12", "WR1", "a1-a5", "path blocked"},
		},
		{
			name:     "unknown piece",
			err:      &MoveError{Err: ErrUnknownPiece, PieceID: "WP9"},
			contains: []string{"WP9", "unknown piece"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrNotYourTurn},
			contains: []string{"not your turn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:     ErrShapeInvalid,
		PieceID: "BN1",
		Ply:     4,
	}

	wrapped := fmt.Errorf("replaying script: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.PieceID != "BN1" {
		t.Errorf("extracted.PieceID = %q, want %q", extracted.PieceID, "BN1")
	}
	if !errors.Is(wrapped, ErrShapeInvalid) {
		t.Error("errors.Is(wrapped, ErrShapeInvalid) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		File:     "opening.txt",
		Line:     7,
		Column:   5,
		Expected: "direction code",
		Got:      "XYZ",
	}

	msg := err.Error()
	for _, s := range []string{"opening.txt:7:5", "expected direction code", "XYZ"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

func TestParseError_LineOnly(t *testing.T) {
	err := &ParseError{Err: ErrInvalidFEN, Line: 2}
	if !containsIgnoreCase(err.Error(), "line 2") {
		t.Errorf("ParseError.Error() = %q, should mention the line", err.Error())
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrMovesIntoCheck, "line %d of %s", 15, "game.txt")

	if !errors.Is(wrapped, ErrMovesIntoCheck) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "line 15 of game.txt") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
