package infra

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"mymaterio/internal/config"
	dbm "mymaterio/internal/models/db_models"
	"mymaterio/pkg/logger"
)

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormLogger.Info
	if cfg.IsProduction() {
		logLevel = gormLogger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.GetPostgresConnectionString()), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info().
		Int("max_open_conns", cfg.Database.MaxOpenConns).
		Int("max_idle_conns", cfg.Database.MaxIdleConns).
		Msg("PostgreSQL connection pool ready")

	return db, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error().Err(err).Msg("Error closing database connection")
	} else {
		logger.Info().Msg("PostgreSQL database connection closed successfully")
	}
}

// Ping checks the pool with the caller's deadline.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the records tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(dbm.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info().Msg("Database schema migrated")
	return nil
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		logger.Error().Err(tx.Error).Msg("Error starting transaction")
	}
	return tx
}

// ReleaseTransaction rolls back when err is non-nil and commits otherwise.
// It returns err, or the commit error if the commit fails.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			logger.Error().Err(rollbackErr).AnErr("cause", err).Msg("Error rolling back transaction")
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		logger.Error().Err(commitErr).Msg("Error committing transaction")
		return fmt.Errorf("commit transaction: %w", commitErr)
	}
	logger.Debug().Msg("Transaction committed successfully")
	return nil
}
