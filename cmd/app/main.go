package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"mymaterio/cmd/fx/config_fx"
	"mymaterio/cmd/fx/controllers_fx"
	"mymaterio/cmd/fx/dashboard"
	"mymaterio/cmd/fx/db_fx"
	"mymaterio/internal/api/controllers"
	"mymaterio/internal/api/routes"
	"mymaterio/internal/config"
	"mymaterio/pkg/logger"
	"mymaterio/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.SetFuncMap(routes.TemplateFuncs())
	r.LoadHTMLGlob(cfg.Server.TemplatesGlob)
	r.Static("/static", cfg.Server.StaticDir)

	routes.RegisterRoutes(r, dashboardController, healthController)

	return r
}
