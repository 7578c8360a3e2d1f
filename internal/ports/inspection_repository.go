package ports

import (
	"context"

	"rnctrack/internal/domain/rnc"
)

// InspectionRecord is the repository-level view of a logged non-conformance.
// Timestamps are RFC3339 UTC text, the inspection date is "YYYY-MM-DD" text;
// nullable columns map to pointers.
type InspectionRecord struct {
	RecordID              uint64
	Date                  *string
	Area                  string
	Title                 string
	Inspector             string
	Description           string
	Severity              string
	Category              string
	ImmediateActions      string
	CorrectiveActionOwner string
	Status                rnc.Status
	ClosedAt              *string
	ClosedBy              *string
	ClosingNotes          *string
	Effectiveness         *string
	ReopenedAt            *string
	ReopenedBy            *string
	ReopeningReason       *string
}

// RecordFilter narrows ListRecords. A zero-value dimension means no
// restriction on that dimension.
type RecordFilter struct {
	Statuses          []rnc.Status
	Severities        []string
	AreaContains      string
	InspectorContains string
}

// EvidenceItem is an incoming photo payload before it has an id.
type EvidenceItem struct {
	Payload  []byte
	Filename string
	MimeType string
}

// Evidence is a stored photo row tagged with the lifecycle phase that
// produced it.
type Evidence struct {
	EvidenceID uint64
	RecordID   uint64
	Payload    []byte
	Filename   string
	MimeType   string
	Phase      rnc.Phase
}

type InspectionReadRepository interface {
	ListRecords(ctx context.Context, filter RecordFilter) ([]InspectionRecord, error)
	GetRecord(ctx context.Context, recordID uint64) (InspectionRecord, error)
}

// InspectionRepository owns record persistence and the raw state-transition
// writes. MarkClosed and MarkReopened update their field group in a single
// statement and carry no state precondition; the lifecycle guard lives in the
// service layer.
type InspectionRepository interface {
	InspectionReadRepository
	CreateRecord(ctx context.Context, record InspectionRecord) (InspectionRecord, error)
	MarkClosed(ctx context.Context, recordID uint64, closedAt string, closedBy string, notes string, effectiveness string) error
	MarkReopened(ctx context.Context, recordID uint64, reopenedAt string, reopenedBy string, reason string) error
}

// EvidenceRepository persists and retrieves photo payloads per record and
// phase. ListEvidence returns rows in insertion order and an empty slice,
// not an error, when none exist.
type EvidenceRepository interface {
	AddEvidence(ctx context.Context, recordID uint64, items []EvidenceItem, phase rnc.Phase) error
	ListEvidence(ctx context.Context, recordID uint64, phase rnc.Phase) ([]Evidence, error)
}
