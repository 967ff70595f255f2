package molerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIsMatchesByType(t *testing.T) {
	err := New(ErrTypeInvalidColor, "#zzz", "not a color")

	if !errors.Is(err, ErrInvalidColor) {
		t.Error("Expected errors.Is to match ErrInvalidColor")
	}
	if errors.Is(err, ErrUnknownPalette) {
		t.Error("Expected errors.Is not to match ErrUnknownPalette")
	}

	wrapped := fmt.Errorf("setting color: %w", err)
	if !errors.Is(wrapped, ErrInvalidColor) {
		t.Error("Expected wrapped error to match ErrInvalidColor")
	}
	if !IsType(wrapped, ErrTypeInvalidColor) {
		t.Error("Expected IsType to see through wrapping")
	}
	if TypeOf(wrapped) != ErrTypeInvalidColor {
		t.Errorf("Expected TypeOf invalid_color, got %q", TypeOf(wrapped))
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrTypeNetwork, "https://files.rcsb.org/download/1UBQ.pdb", "request failed", cause)

	msg := err.Error()
	for _, want := range []string{"type=network", "subject=https://files.rcsb.org", "request failed", "cause=connection refused"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q, got %q", want, msg)
		}
	}

	if !errors.Is(err, cause) {
		t.Error("Expected Unwrap to expose the cause")
	}
}

func TestHTTPStatus(t *testing.T) {
	err := HTTPStatus(ErrTypeNotFound, "9ZZZ", 404, "entry not found")
	if err.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", err.StatusCode)
	}
	if !strings.Contains(err.Error(), "status=404") {
		t.Errorf("Expected status in message, got %q", err.Error())
	}
}

func TestTypeOfForeignError(t *testing.T) {
	if TypeOf(errors.New("plain")) != "" {
		t.Error("Expected empty type for non-molview error")
	}
	if IsType(nil, ErrTypeNotFound) {
		t.Error("Expected IsType(nil) to be false")
	}
}
