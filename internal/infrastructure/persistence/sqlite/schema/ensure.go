package schema

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"rnctrack/internal/bootstrap/logging"
	"rnctrack/internal/errs"
	"rnctrack/internal/infrastructure/persistence/sqlite/model"
)

// additiveColumns is the authoritative list of columns added after the first
// released schema. Each entry is applied only when the column is absent, so
// EnsureSchema is safe against database files created by any older version.
var additiveColumns = []struct {
	Model any
	Field string
}{
	{&model.Inspection{}, "CorrectiveActionOwner"},
	{&model.Inspection{}, "ReopenedAt"},
	{&model.Inspection{}, "ReopenedBy"},
	{&model.Inspection{}, "ReopeningReason"},
	{&model.Inspection{}, "Status"},
	{&model.Photo{}, "Filename"},
	{&model.Photo{}, "MimeType"},
	{&model.Photo{}, "Payload"},
	{&model.Photo{}, "Phase"},
}

// EnsureSchema creates the inspection, photo and kv tables when absent and
// applies the additive column migrations. Idempotent; meant to run on every
// process start before anything else touches the database. Column presence is
// checked through the migrator instead of attempting the DDL and swallowing
// the failure, so a real storage error still propagates.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if db == nil {
		return errors.New("database handle is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "persistence.schema"))
	migrator := db.WithContext(ctx).Migrator()

	for _, m := range []any{&model.Inspection{}, &model.Photo{}, &model.RNCKV{}} {
		if migrator.HasTable(m) {
			continue
		}
		if err := migrator.CreateTable(m); err != nil {
			return errs.Wrapf(err, "create table for %T", m)
		}
	}

	added := 0
	for _, col := range additiveColumns {
		if migrator.HasColumn(col.Model, col.Field) {
			continue
		}
		if err := migrator.AddColumn(col.Model, col.Field); err != nil {
			return errs.Wrapf(err, "add column %s to %T", col.Field, col.Model)
		}
		added++
	}

	logging.Info(logCtx, "schema ensured", slog.Int("columns_added", added))
	return nil
}
