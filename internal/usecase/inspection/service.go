package inspection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rnctrack/internal/ports"
)

var (
	errContextRequired  = errors.New("context is required")
	errTitleRequired    = errors.New("title is required")
	errActorRequired    = errors.New("actor is required")
	errRecordIDRequired = errors.New("record id is required")
)

// Service owns the record lifecycle: create, close, reopen, queries,
// evidence attachment and export. All writes go through the unit of work;
// the cache is a best-effort status hint and never fails an operation.
type Service struct {
	records ports.InspectionRepository
	photos  ports.EvidenceRepository
	uow     ports.UnitOfWork
	cache   ports.Cache
}

func NewService(records ports.InspectionRepository, photos ports.EvidenceRepository, uow ports.UnitOfWork, cache ports.Cache) *Service {
	return &Service{
		records: records,
		photos:  photos,
		uow:     uow,
		cache:   cache,
	}
}

type CreateRecordInput struct {
	Date                  string // "YYYY-MM-DD", optional
	Area                  string
	Title                 string
	Inspector             string
	Description           string
	Severity              string
	Category              string
	ImmediateActions      string
	CorrectiveActionOwner string
	Photos                []ports.EvidenceItem
}

type CloseRecordInput struct {
	RecordID      uint64
	ClosedBy      string
	Notes         string
	Effectiveness string
	Photos        []ports.EvidenceItem
}

type ReopenRecordInput struct {
	RecordID   uint64
	ReopenedBy string
	Reason     string
	Photos     []ports.EvidenceItem
}

func (s *Service) ready() error {
	if s.records == nil {
		return errors.New("inspection repository is required")
	}
	if s.photos == nil {
		return errors.New("evidence repository is required")
	}
	if s.uow == nil {
		return errors.New("unit of work is required")
	}
	return nil
}

func (s *Service) setCacheBestEffort(ctx context.Context, key string, value string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, value, 0)
}

func cacheRecordStatusKey(recordID uint64) string {
	return fmt.Sprintf("rnc:%d:status", recordID)
}

func nowUTCString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
