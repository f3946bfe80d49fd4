// Package database opens, migrates and monitors the gorm connection shared by the services
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Aidin1998/creatorhub/internal/infrastructure/config"
	"github.com/Aidin1998/creatorhub/pkg/metrics"
	"github.com/Aidin1998/creatorhub/pkg/models"
)

// PoolOptions holds connection pool limits
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Open connects to the configured database and migrates the schema when enabled
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: newGormLogger(log, cfg.LogQueries),
		// Surface driver-specific unique violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	pool := PoolOptions{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewPostgresDB(cfg.DSN, pool, gormCfg)
	case config.DriverSQLite:
		db, err = NewSQLiteDB(cfg.DSN, pool, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Info("Database schema migrated", zap.String("driver", cfg.Driver))
	}

	return db, nil
}

// slowQueryThreshold marks queries logged as slow when query logging is on
const slowQueryThreshold = 200 * time.Millisecond

// newGormLogger routes gorm's log lines through zap under the "gorm" name.
// Only errors are logged unless logQueries is set.
func newGormLogger(log *zap.Logger, logQueries bool) logger.Interface {
	level := logger.Error
	if logQueries {
		level = logger.Info
	}
	return logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// AutoMigrate creates or updates the creator and asset tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Creator{}, &models.AssetMetadata{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordPoolStats publishes the current pool statistics under the given label
func RecordPoolStats(db *gorm.DB, name string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	stats := sqlDB.Stats()
	metrics.DBOpenConns.WithLabelValues(name).Set(float64(stats.OpenConnections))
	metrics.DBIdleConns.WithLabelValues(name).Set(float64(stats.Idle))
	metrics.DBInUseConns.WithLabelValues(name).Set(float64(stats.InUse))
	return nil
}

// CollectPoolStats records pool statistics every interval until ctx is done
func CollectPoolStats(ctx context.Context, db *gorm.DB, name string, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := RecordPoolStats(db, name); err != nil {
				log.Warn("Failed to record DB pool stats", zap.Error(err))
			}
		}
	}
}
