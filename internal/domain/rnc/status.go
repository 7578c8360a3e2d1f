package rnc

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an inspection record.
type Status string

const (
	StatusOpen        Status = "Open"
	StatusUnderReview Status = "Under Review"
	StatusInAction    Status = "In Action"
	StatusBlocked     Status = "Blocked"
	StatusClosed      Status = "Closed"
)

var allowedStatuses = map[Status]struct{}{
	StatusOpen:        {},
	StatusUnderReview: {},
	StatusInAction:    {},
	StatusBlocked:     {},
	StatusClosed:      {},
}

func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidStatus)
	}

	for status := range allowedStatuses {
		if strings.EqualFold(string(status), trimmed) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

func (s Status) Valid() bool {
	_, ok := allowedStatuses[s]
	return ok
}

func (s Status) String() string { return string(s) }

// Phase tags which lifecycle transition produced an evidence photo.
type Phase string

const (
	PhaseOpening   Phase = "opening"
	PhaseClosing   Phase = "closing"
	PhaseReopening Phase = "reopening"
)

func ParsePhase(raw string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PhaseOpening):
		return PhaseOpening, nil
	case string(PhaseClosing):
		return PhaseClosing, nil
	case string(PhaseReopening):
		return PhaseReopening, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPhase, raw)
	}
}

func (p Phase) Valid() bool {
	return p == PhaseOpening || p == PhaseClosing || p == PhaseReopening
}

func (p Phase) String() string { return string(p) }

// Vocabularies carried from the inspection forms. Stored as free text;
// validated only at the CLI edge.
var (
	Severities      = []string{"Low", "Medium", "High", "Critical"}
	Categories      = []string{"Safety", "Quality", "Environment", "Operations", "Maintenance", "Other"}
	Effectivenesses = []string{"To verify", "Effective", "Not effective"}
)
