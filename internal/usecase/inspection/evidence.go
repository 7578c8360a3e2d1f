package inspection

import (
	"context"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
)

// AttachEvidence stores photos for an existing record under the given phase.
// Also the retry path when a close/reopen succeeded but its evidence insert
// failed. Existence check and inserts share one transaction so the rows never
// reference a missing record.
func (s *Service) AttachEvidence(ctx context.Context, recordID uint64, items []ports.EvidenceItem, phase rnc.Phase) error {
	if ctx == nil {
		return errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if err := s.ready(); err != nil {
		return err
	}
	if recordID == 0 {
		return errRecordIDRequired
	}
	if len(items) == 0 {
		return nil
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.records.GetRecord(txCtx, recordID); err != nil {
			return err
		}
		return s.photos.AddEvidence(txCtx, recordID, items, phase)
	})
}

// ListEvidence returns the stored photos for a record and phase in insertion
// order. An empty slice, not an error, when none exist.
func (s *Service) ListEvidence(ctx context.Context, recordID uint64, phase rnc.Phase) ([]ports.Evidence, error) {
	if ctx == nil {
		return nil, errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if recordID == 0 {
		return nil, errRecordIDRequired
	}

	return s.photos.ListEvidence(ctx, recordID, phase)
}
