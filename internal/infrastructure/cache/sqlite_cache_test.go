package cache

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"rnctrack/internal/infrastructure/persistence/sqlite/schema"
)

func setupCache(t *testing.T) *SQLiteCache {
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
	if err := schema.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return NewSQLiteCache(db)
}

func TestCacheSetGetOverwrite(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	if _, found, err := c.Get(ctx, "rnc:1:status"); err != nil || found {
		t.Fatalf("Get() before set = found %v, err %v", found, err)
	}

	if err := c.Set(ctx, "rnc:1:status", "Open", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set(ctx, "rnc:1:status", "Closed", 0); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	value, found, err := c.Get(ctx, "rnc:1:status")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || value != "Closed" {
		t.Fatalf("Get() = %q, found %v", value, found)
	}

	if err := c.Delete(ctx, "rnc:1:status"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, found, _ := c.Get(ctx, "rnc:1:status"); found {
		t.Fatalf("Get() after delete found entry")
	}
}
