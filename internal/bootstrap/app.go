package bootstrap

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rnctrack/internal/bootstrap/config"
	"rnctrack/internal/infrastructure/persistence/sqlite/schema"
)

// App bundles the loaded config and the shared database handle. Built by the
// fx module; the handle is closed through the fx lifecycle.
type App struct {
	Config config.Config
	DB     *gorm.DB
}

// EnsureSchema runs the schema manager. Idempotent; every command calls it
// before touching records so a database file created by an older build is
// upgraded in place.
func (a *App) EnsureSchema(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	return schema.EnsureSchema(ctx, a.DB)
}
