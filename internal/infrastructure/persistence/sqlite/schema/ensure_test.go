package schema

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"rnctrack/internal/infrastructure/persistence/sqlite/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "rnc.db")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func TestEnsureSchemaCreatesTables(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	migrator := db.Migrator()
	for _, m := range []any{&model.Inspection{}, &model.Photo{}, &model.RNCKV{}} {
		if !migrator.HasTable(m) {
			t.Fatalf("table for %T missing", m)
		}
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("EnsureSchema() run %d error = %v", i, err)
		}
	}
}

func TestEnsureSchemaUpgradesOldDatabase(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// First-generation schema: no corrective action owner, no reopening
	// fields, photos without phase tagging.
	if err := db.Exec(`CREATE TABLE inspections (
		record_id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT,
		area TEXT NOT NULL,
		title TEXT NOT NULL,
		inspector TEXT NOT NULL,
		description TEXT,
		severity TEXT,
		category TEXT,
		immediate_actions TEXT,
		status TEXT NOT NULL DEFAULT 'Open',
		closed_at TEXT,
		closed_by TEXT,
		closing_notes TEXT,
		effectiveness TEXT
	)`).Error; err != nil {
		t.Fatalf("create legacy inspections: %v", err)
	}
	if err := db.Exec(`CREATE TABLE photos (
		evidence_id INTEGER PRIMARY KEY AUTOINCREMENT,
		record_id INTEGER NOT NULL
	)`).Error; err != nil {
		t.Fatalf("create legacy photos: %v", err)
	}
	if err := db.Exec(`INSERT INTO inspections (area, title, inspector) VALUES ('Belt TR-7', 'Loose bolts', 'Silva')`).Error; err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	migrator := db.Migrator()
	for _, field := range []string{"CorrectiveActionOwner", "ReopenedAt", "ReopenedBy", "ReopeningReason"} {
		if !migrator.HasColumn(&model.Inspection{}, field) {
			t.Fatalf("inspections missing column %s after upgrade", field)
		}
	}
	for _, field := range []string{"Filename", "MimeType", "Payload", "Phase"} {
		if !migrator.HasColumn(&model.Photo{}, field) {
			t.Fatalf("photos missing column %s after upgrade", field)
		}
	}

	// Existing data survives the upgrade.
	var count int64
	if err := db.Model(&model.Inspection{}).Count(&count).Error; err != nil {
		t.Fatalf("count inspections: %v", err)
	}
	if count != 1 {
		t.Fatalf("inspections count = %d", count)
	}
}
