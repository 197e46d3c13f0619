package controllers_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"mymaterio/internal/api/controllers"
	"mymaterio/internal/infra"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(provideHealthController))

func provideHealthController(db *gorm.DB) *controllers.HealthController {
	return controllers.NewHealthController(func(ctx context.Context) error {
		return infra.Ping(ctx, db)
	})
}
