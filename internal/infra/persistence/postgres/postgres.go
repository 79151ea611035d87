// Package postgres contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production store; SQLite serves local runs and tests.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"its/config"
	"its/internal/domain/lifecycle"
	"its/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its lifetime to the fx application.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated", slog.String("driver", params.Config.Database.Driver))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the database selected by database.driver without any lifecycle hooks.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err = openSQLite(cfg.Database.SQLitePath)
	case config.DriverPostgres, "":
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is missing")
		}
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			err = errors.Wrap(err, "failed to create PostgreSQL client")
		}
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	return db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Multi-step work is grouped explicitly via txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

func openSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite serializes writers; one connection also keeps an in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "failed to enable SQLite foreign keys")
	}

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Database pool wait observed", attrs...)
			}

			prev = cur
		}
	}
}
