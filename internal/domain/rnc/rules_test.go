package rnc

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("closed")
	if err != nil {
		t.Fatalf("ParseStatus() error = %v", err)
	}
	if status != StatusClosed {
		t.Fatalf("ParseStatus() = %q", status)
	}

	if _, err := ParseStatus("Cancelled"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ParseStatus() error = %v, want ErrInvalidStatus", err)
	}
	if _, err := ParseStatus("  "); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ParseStatus() error = %v, want ErrInvalidStatus", err)
	}
}

func TestParsePhase(t *testing.T) {
	for _, raw := range []string{"opening", "Closing", " REOPENING "} {
		phase, err := ParsePhase(raw)
		if err != nil {
			t.Fatalf("ParsePhase(%q) error = %v", raw, err)
		}
		if !phase.Valid() {
			t.Fatalf("ParsePhase(%q) = %q, not valid", raw, phase)
		}
	}

	if _, err := ParsePhase("verification"); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("ParsePhase() error = %v, want ErrInvalidPhase", err)
	}
}

func TestCanReopen(t *testing.T) {
	for _, status := range []Status{StatusOpen, StatusUnderReview, StatusInAction, StatusBlocked} {
		if CanReopen(status) {
			t.Fatalf("CanReopen(%q) = true", status)
		}
	}
	if !CanReopen(StatusClosed) {
		t.Fatalf("CanReopen(Closed) = false")
	}
}
