package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"mymaterio/internal/config"
	"mymaterio/internal/infra"
	"mymaterio/internal/seed"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(prepareSchema),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}

func prepareSchema(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Database.AutoMigrate {
				if err := infra.Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}
			if cfg.Database.Seed {
				if _, err := seed.CreateDemoData(ctx, db); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
