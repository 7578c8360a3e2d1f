package inspection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
)

// CreateRecord inserts a new record with status Open and attaches any
// opening-phase photos. Record insert and photo inserts run in one
// transaction so the photos always reference a committed id.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (uint64, error) {
	if ctx == nil {
		return 0, errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return 0, errs.Wrap(err, "check context")
	}
	if err := s.ready(); err != nil {
		return 0, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return 0, errTitleRequired
	}

	var date *string
	if raw := strings.TrimSpace(input.Date); raw != "" {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return 0, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input.Date)
		}
		date = &raw
	}

	record := ports.InspectionRecord{
		Date:                  date,
		Area:                  strings.TrimSpace(input.Area),
		Title:                 title,
		Inspector:             strings.TrimSpace(input.Inspector),
		Description:           strings.TrimSpace(input.Description),
		Severity:              strings.TrimSpace(input.Severity),
		Category:              strings.TrimSpace(input.Category),
		ImmediateActions:      strings.TrimSpace(input.ImmediateActions),
		CorrectiveActionOwner: strings.TrimSpace(input.CorrectiveActionOwner),
		Status:                rnc.StatusOpen,
	}

	var created ports.InspectionRecord
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.records.CreateRecord(txCtx, record)
		if err != nil {
			return err
		}
		return s.photos.AddEvidence(txCtx, created.RecordID, input.Photos, rnc.PhaseOpening)
	}); err != nil {
		return 0, err
	}

	s.setCacheBestEffort(ctx, cacheRecordStatusKey(created.RecordID), string(rnc.StatusOpen))
	return created.RecordID, nil
}
