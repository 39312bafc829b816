// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/metrics"
	"github.com/javajoker/shopsmart-backend/internal/store"
)

// OpenStore is NewStore for the server: a backend that cannot be opened
// degrades to an in-memory store instead of failing startup.
func OpenStore(ctx context.Context, cfg *config.Config) store.Store {
	s, err := NewStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Store.Driver).
			Warn("Slot store unavailable, falling back to in-memory store")
		metrics.PersistenceFailures.WithLabelValues("store", "open").Inc()
		return store.NewMemoryStore()
	}
	return s
}

// NewStore opens the slot store selected by cfg.Store.Driver.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logrus.Warn("Using in-memory store, selections will not survive a restart")
		return store.NewMemoryStore(), nil

	case config.StoreDriverRedis:
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client, cfg.Store.Namespace), nil

	case config.StoreDriverSQLite, config.StoreDriverPostgres:
		db, err := Initialize(cfg.Store.Driver, cfg)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(db); err != nil {
			Close(db)
			return nil, err
		}
		return store.NewGormStore(db, cfg.Store.Namespace), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func Initialize(driver string, cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.StoreDriverPostgres:
		dialector = postgres.Open(cfg.Database.DSN())
	default:
		dialector = sqlite.Open(cfg.Store.SQLitePath)
	}

	// Configure GORM logger
	var gormConfig *gorm.Config
	if cfg.Database.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	if driver == config.StoreDriverPostgres {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.MaxLifetime) * time.Second)
	} else {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", driver).Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(&store.Slot{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr(), err)
	}

	logrus.WithField("addr", cfg.Addr()).Info("Redis connection established successfully")
	return client, nil
}
