package inspection

import (
	"context"

	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
)

func (s *Service) ListRecords(ctx context.Context, filter ports.RecordFilter) ([]ports.InspectionRecord, error) {
	if ctx == nil {
		return nil, errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	return s.records.ListRecords(ctx, filter)
}

func (s *Service) GetRecord(ctx context.Context, recordID uint64) (ports.InspectionRecord, error) {
	if ctx == nil {
		return ports.InspectionRecord{}, errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return ports.InspectionRecord{}, errs.Wrap(err, "check context")
	}
	if err := s.ready(); err != nil {
		return ports.InspectionRecord{}, err
	}
	if recordID == 0 {
		return ports.InspectionRecord{}, errRecordIDRequired
	}

	return s.records.GetRecord(ctx, recordID)
}
