package database

import (
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/adapter/persistence/gormrepo"
	"fieldservice/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 10

// OpenGorm connects to Postgres or SQLite according to cfg.StorageDriver and
// migrates the schema. Postgres connections are retried while the database
// starts up.
func OpenGorm(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.DBDebug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	case config.StoragePostgres:
		if cfg.DatabaseDSN == "" {
			return nil, errors.New("DATABASE_DSN is empty")
		}
		for i := 0; i < connectAttempts; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), gcfg)
			if err == nil {
				break
			}
			log.Warn("retrying database connection", zap.Int("attempt", i+1), zap.Error(err))
			time.Sleep(2 * time.Second)
		}
	default:
		return nil, fmt.Errorf("unsupported relational driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := gormrepo.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.StorageDriver == config.StorageSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("database ready", zap.String("driver", cfg.StorageDriver))
	return db, nil
}
