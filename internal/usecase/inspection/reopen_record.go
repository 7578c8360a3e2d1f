package inspection

import (
	"context"
	"fmt"
	"strings"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
)

// ReopenRecord moves a Closed record back to In Action and stamps the three
// reopening fields. The repository write itself is permissive; the Closed
// precondition is enforced here, inside the same transaction that reads the
// record. Prior closure fields are kept readable. Reopening-phase photos are
// attached as a separate retryable step, same as CloseRecord.
func (s *Service) ReopenRecord(ctx context.Context, input ReopenRecordInput) error {
	if ctx == nil {
		return errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if err := s.ready(); err != nil {
		return err
	}
	if input.RecordID == 0 {
		return errRecordIDRequired
	}

	reopenedBy := strings.TrimSpace(input.ReopenedBy)
	if reopenedBy == "" {
		return errActorRequired
	}

	now := nowUTCString()
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		record, err := s.records.GetRecord(txCtx, input.RecordID)
		if err != nil {
			return err
		}
		if !rnc.CanReopen(record.Status) {
			return fmt.Errorf("%w: record %d has status %q", rnc.ErrNotClosed, input.RecordID, record.Status)
		}
		return s.records.MarkReopened(txCtx, input.RecordID, now, reopenedBy, strings.TrimSpace(input.Reason))
	}); err != nil {
		return err
	}

	if len(input.Photos) > 0 {
		if err := s.photos.AddEvidence(ctx, input.RecordID, input.Photos, rnc.PhaseReopening); err != nil {
			return errs.Wrap(err, "attach reopening evidence")
		}
	}

	s.setCacheBestEffort(ctx, cacheRecordStatusKey(input.RecordID), string(rnc.StatusInAction))
	return nil
}
