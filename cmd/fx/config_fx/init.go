package config_fx

import (
	"go.uber.org/fx"

	"mymaterio/internal/config"
	"mymaterio/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Invoke(configureLogger),
)

func provideConfig() (*config.Config, error) {
	return config.LoadConfig(config.GetEnv("CONFIG_PATH", "config.yaml"))
}

func configureLogger(cfg *config.Config) {
	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})
}
