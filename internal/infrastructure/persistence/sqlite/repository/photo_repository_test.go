package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/ports"
)

func TestEvidenceRoundTrip(t *testing.T) {
	db := setupDB(t)
	records := NewInspectionRepository(db)
	photos := NewPhotoRepository(db)
	ctx := context.Background()

	record := seedRecord(t, records, ports.InspectionRecord{Area: "a", Title: "t", Inspector: "i"})
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

	if err := photos.AddEvidence(ctx, record.RecordID, []ports.EvidenceItem{{
		Payload:  payload,
		Filename: "before.jpg",
		MimeType: "image/jpeg",
	}}, rnc.PhaseOpening); err != nil {
		t.Fatalf("AddEvidence() error = %v", err)
	}

	items, err := photos.ListEvidence(ctx, record.RecordID, rnc.PhaseOpening)
	if err != nil {
		t.Fatalf("ListEvidence() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListEvidence() len = %d", len(items))
	}
	got := items[0]
	if !bytes.Equal(got.Payload, payload) {
		t.Fatalf("payload bytes differ")
	}
	if got.Filename != "before.jpg" || got.MimeType != "image/jpeg" {
		t.Fatalf("metadata = %q %q", got.Filename, got.MimeType)
	}
	if got.Phase != rnc.PhaseOpening {
		t.Fatalf("phase = %q", got.Phase)
	}

	// Other phases stay empty.
	for _, phase := range []rnc.Phase{rnc.PhaseClosing, rnc.PhaseReopening} {
		other, err := photos.ListEvidence(ctx, record.RecordID, phase)
		if err != nil {
			t.Fatalf("ListEvidence(%s) error = %v", phase, err)
		}
		if len(other) != 0 {
			t.Fatalf("ListEvidence(%s) len = %d", phase, len(other))
		}
	}
}

func TestListEvidencePreservesInsertionOrder(t *testing.T) {
	db := setupDB(t)
	records := NewInspectionRepository(db)
	photos := NewPhotoRepository(db)
	ctx := context.Background()

	record := seedRecord(t, records, ports.InspectionRecord{Area: "a", Title: "t", Inspector: "i"})
	for _, name := range []string{"one.png", "two.png", "three.png"} {
		if err := photos.AddEvidence(ctx, record.RecordID, []ports.EvidenceItem{{
			Payload:  []byte(name),
			Filename: name,
			MimeType: "image/png",
		}}, rnc.PhaseClosing); err != nil {
			t.Fatalf("AddEvidence(%s) error = %v", name, err)
		}
	}

	items, err := photos.ListEvidence(ctx, record.RecordID, rnc.PhaseClosing)
	if err != nil {
		t.Fatalf("ListEvidence() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListEvidence() len = %d", len(items))
	}
	if items[0].Filename != "one.png" || items[1].Filename != "two.png" || items[2].Filename != "three.png" {
		t.Fatalf("order = %q, %q, %q", items[0].Filename, items[1].Filename, items[2].Filename)
	}
}

func TestAddEvidenceRejectsUnknownPhase(t *testing.T) {
	db := setupDB(t)
	photos := NewPhotoRepository(db)

	err := photos.AddEvidence(context.Background(), 1, []ports.EvidenceItem{{Payload: []byte("x")}}, rnc.Phase("verification"))
	if !errors.Is(err, rnc.ErrInvalidPhase) {
		t.Fatalf("AddEvidence() error = %v, want ErrInvalidPhase", err)
	}
}

func TestAddEvidenceNoItemsIsNoop(t *testing.T) {
	db := setupDB(t)
	photos := NewPhotoRepository(db)

	if err := photos.AddEvidence(context.Background(), 1, nil, rnc.PhaseOpening); err != nil {
		t.Fatalf("AddEvidence() error = %v", err)
	}
}
