package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/infrastructure/persistence/sqlite/model"
	"rnctrack/internal/ports"
)

type InspectionRepository struct {
	db *gorm.DB
}

var _ ports.InspectionRepository = (*InspectionRepository)(nil)

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

// CreateRecord inserts the record and returns it with the generated id
// populated. gorm fills the primary key on Create, so the id is available
// inside the same transaction without a secondary last-insert-id query.
func (r *InspectionRepository) CreateRecord(ctx context.Context, record ports.InspectionRecord) (ports.InspectionRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.InspectionRecord{}, err
	}

	status := record.Status
	if status == "" {
		status = rnc.StatusOpen
	}

	row := model.Inspection{
		Date:                  record.Date,
		Area:                  record.Area,
		Title:                 record.Title,
		Inspector:             record.Inspector,
		Description:           record.Description,
		Severity:              record.Severity,
		Category:              record.Category,
		ImmediateActions:      record.ImmediateActions,
		CorrectiveActionOwner: record.CorrectiveActionOwner,
		Status:                string(status),
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.InspectionRecord{}, errs.Wrap(err, "insert inspection")
	}

	return mapInspection(row), nil
}

func (r *InspectionRepository) ListRecords(ctx context.Context, filter ports.RecordFilter) ([]ports.InspectionRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Inspection{})
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		query = query.Where("status IN ?", statuses)
	}
	if len(filter.Severities) > 0 {
		query = query.Where("severity IN ?", filter.Severities)
	}
	if area := strings.TrimSpace(filter.AreaContains); area != "" {
		query = query.Where("lower(area) LIKE ?", "%"+strings.ToLower(area)+"%")
	}
	if inspector := strings.TrimSpace(filter.InspectorContains); inspector != "" {
		query = query.Where("lower(inspector) LIKE ?", "%"+strings.ToLower(inspector)+"%")
	}

	var rows []model.Inspection
	if err := query.Order("record_id desc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query inspections")
	}

	items := make([]ports.InspectionRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapInspection(row))
	}
	return items, nil
}

func (r *InspectionRepository) GetRecord(ctx context.Context, recordID uint64) (ports.InspectionRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.InspectionRecord{}, err
	}

	var row model.Inspection
	if err := db.Where("record_id = ?", recordID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.InspectionRecord{}, rnc.ErrRecordNotFound
		}
		return ports.InspectionRecord{}, errs.Wrap(err, "query inspection by id")
	}
	return mapInspection(row), nil
}

// MarkClosed sets the status and all four closure fields in one UPDATE.
// No precondition on the current status at this layer.
func (r *InspectionRepository) MarkClosed(ctx context.Context, recordID uint64, closedAt string, closedBy string, notes string, effectiveness string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.Inspection{}).
		Where("record_id = ?", recordID).
		Updates(map[string]any{
			"status":        string(rnc.StatusClosed),
			"closed_at":     closedAt,
			"closed_by":     closedBy,
			"closing_notes": notes,
			"effectiveness": effectiveness,
		})
	if res.Error != nil {
		return errs.Wrap(res.Error, "mark inspection closed")
	}
	if res.RowsAffected == 0 {
		return rnc.ErrRecordNotFound
	}
	return nil
}

// MarkReopened sets the status back to In Action and stamps the three
// reopening fields in one UPDATE. Prior closure fields are left untouched.
func (r *InspectionRepository) MarkReopened(ctx context.Context, recordID uint64, reopenedAt string, reopenedBy string, reason string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.Inspection{}).
		Where("record_id = ?", recordID).
		Updates(map[string]any{
			"status":           string(rnc.StatusInAction),
			"reopened_at":      reopenedAt,
			"reopened_by":      reopenedBy,
			"reopening_reason": reason,
		})
	if res.Error != nil {
		return errs.Wrap(res.Error, "mark inspection reopened")
	}
	if res.RowsAffected == 0 {
		return rnc.ErrRecordNotFound
	}
	return nil
}

func mapInspection(row model.Inspection) ports.InspectionRecord {
	return ports.InspectionRecord{
		RecordID:              row.RecordID,
		Date:                  row.Date,
		Area:                  row.Area,
		Title:                 row.Title,
		Inspector:             row.Inspector,
		Description:           row.Description,
		Severity:              row.Severity,
		Category:              row.Category,
		ImmediateActions:      row.ImmediateActions,
		CorrectiveActionOwner: row.CorrectiveActionOwner,
		Status:                rnc.Status(row.Status),
		ClosedAt:              row.ClosedAt,
		ClosedBy:              row.ClosedBy,
		ClosingNotes:          row.ClosingNotes,
		Effectiveness:         row.Effectiveness,
		ReopenedAt:            row.ReopenedAt,
		ReopenedBy:            row.ReopenedBy,
		ReopeningReason:       row.ReopeningReason,
	}
}
