package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/infrastructure/persistence/sqlite/model"
	"rnctrack/internal/ports"
)

// PhotoRepository is the evidence store. Payloads are opaque bytes; nothing
// here inspects or validates them.
type PhotoRepository struct {
	db *gorm.DB
}

var _ ports.EvidenceRepository = (*PhotoRepository)(nil)

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *PhotoRepository) AddEvidence(ctx context.Context, recordID uint64, items []ports.EvidenceItem, phase rnc.Phase) error {
	if len(items) == 0 {
		return nil
	}
	if !phase.Valid() {
		return fmt.Errorf("%w: %q", rnc.ErrInvalidPhase, phase)
	}

	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	rows := make([]model.Photo, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.Photo{
			RecordID: recordID,
			Payload:  item.Payload,
			Filename: item.Filename,
			MimeType: item.MimeType,
			Phase:    string(phase),
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return errs.Wrap(err, "insert photos")
	}
	return nil
}

func (r *PhotoRepository) ListEvidence(ctx context.Context, recordID uint64, phase rnc.Phase) ([]ports.Evidence, error) {
	if !phase.Valid() {
		return nil, fmt.Errorf("%w: %q", rnc.ErrInvalidPhase, phase)
	}

	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Photo
	if err := db.
		Where("record_id = ? AND phase = ?", recordID, string(phase)).
		Order("evidence_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query photos")
	}

	items := make([]ports.Evidence, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.Evidence{
			EvidenceID: row.EvidenceID,
			RecordID:   row.RecordID,
			Payload:    row.Payload,
			Filename:   row.Filename,
			MimeType:   row.MimeType,
			Phase:      rnc.Phase(row.Phase),
		})
	}
	return items, nil
}
