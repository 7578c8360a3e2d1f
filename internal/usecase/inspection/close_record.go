package inspection

import (
	"context"
	"log/slog"
	"strings"

	"rnctrack/internal/bootstrap/logging"
	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
)

// CloseRecord stamps the four closure fields and flips the status to Closed
// in one transaction. Closing-phase photos are attached afterwards in their
// own step: if that insert fails the record stays Closed and the caller can
// retry through AttachEvidence. Closing an already-Closed record overwrites
// the closure fields as a consistent group.
func (s *Service) CloseRecord(ctx context.Context, input CloseRecordInput) error {
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

	closedBy := strings.TrimSpace(input.ClosedBy)
	if closedBy == "" {
		return errActorRequired
	}

	now := nowUTCString()
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.records.GetRecord(txCtx, input.RecordID); err != nil {
			return err
		}
		return s.records.MarkClosed(txCtx, input.RecordID, now, closedBy, strings.TrimSpace(input.Notes), strings.TrimSpace(input.Effectiveness))
	}); err != nil {
		return err
	}

	if len(input.Photos) > 0 {
		if err := s.photos.AddEvidence(ctx, input.RecordID, input.Photos, rnc.PhaseClosing); err != nil {
			logging.Warn(ctx, "record closed but closing evidence not stored",
				slog.Uint64("record_id", input.RecordID),
				slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "attach closing evidence")
		}
	}

	s.setCacheBestEffort(ctx, cacheRecordStatusKey(input.RecordID), string(rnc.StatusClosed))
	return nil
}
