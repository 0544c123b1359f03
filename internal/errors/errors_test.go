package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrVacantSquare", ErrVacantSquare, ErrVacantSquare},
		{"ErrKingCapture", ErrKingCapture, ErrKingCapture},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoMove", ErrNoMove, ErrNoMove},
		{"ErrInvalidSnapshot", ErrInvalidSnapshot, ErrInvalidSnapshot},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidKeyTable", ErrInvalidKeyTable, ErrInvalidKeyTable},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to decode position: %w", ErrInvalidSnapshot)

	if !errors.Is(wrapped, ErrInvalidSnapshot) {
		t.Errorf("errors.Is(wrapped, ErrInvalidSnapshot) = false, want true")
	}
}

func TestInvariantError(t *testing.T) {
	err := &InvariantError{Err: ErrKingCapture, Turn: 17, Move: "D1-E8"}

	msg := err.Error()
	for _, s := range []string{"turn 17", "D1-E8", "capture a king"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("InvariantError.Error() = %q, should contain %q", msg, s)
		}
	}

	wrapped := fmt.Errorf("autoplay: %w", err)
	if !errors.Is(wrapped, ErrKingCapture) {
		t.Error("errors.Is(wrapped, ErrKingCapture) = false, want true")
	}
	if !IsInvariantViolation(wrapped) {
		t.Error("IsInvariantViolation(wrapped) = false, want true")
	}
	if IsInvariantViolation(ErrIllegalMove) {
		t.Error("IsInvariantViolation(ErrIllegalMove) = true, want false")
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:    ErrIllegalMove,
				GameID: "c0ffee",
				GameNo: 5,
				Ply:    12,
				Move:   "G1-F3",
			},
			contains: []string{"game 5", "ply 12", "G1-F3", "c0ffee", "illegal move"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err: ErrNoMove,
			},
			contains: []string{"game", "no move proposed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{
		Err:    ErrInvalidFEN,
		GameNo: 1,
	}

	unwrapped := errors.Unwrap(gameErr)
	if !errors.Is(unwrapped, ErrInvalidFEN) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidFEN)
	}

	if !errors.Is(gameErr, ErrInvalidFEN) {
		t.Error("errors.Is(gameErr, ErrInvalidFEN) = false, want true")
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:    ErrIllegalMove,
		GameNo: 3,
		Ply:    24,
		Move:   "E1-C1",
	}

	wrapped := fmt.Errorf("self-play failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}

	if extractedErr.GameNo != 3 {
		t.Errorf("extractedErr.GameNo = %d, want 3", extractedErr.GameNo)
	}
	if extractedErr.Move != "E1-C1" {
		t.Errorf("extractedErr.Move = %q, want %q", extractedErr.Move, "E1-C1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "turn %d in game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "turn 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
