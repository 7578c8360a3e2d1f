package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"rnctrack/internal/bootstrap/config"
	"rnctrack/internal/bootstrap/database"
	"rnctrack/internal/bootstrap/logging"
	cacheinfra "rnctrack/internal/infrastructure/cache"
	sqliterepo "rnctrack/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "rnctrack/internal/infrastructure/persistence/sqlite/uow"
	"rnctrack/internal/ports"
	"rnctrack/internal/usecase/inspection"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewInspectionRepository,
			fx.As(new(ports.InspectionRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewPhotoRepository,
			fx.As(new(ports.EvidenceRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(
		fx.Annotate(
			cacheinfra.NewSQLiteCache,
			fx.As(new(ports.Cache)),
		),
	),
	fx.Provide(inspection.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{Config: cfg, DB: db}
}
