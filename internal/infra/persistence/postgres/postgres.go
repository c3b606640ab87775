package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"skillswap/config"
	"skillswap/internal/domain/lifecycle"
	"skillswap/internal/errors"
	"skillswap/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the saved-locations database. The connection is verified and the
// locations table migrated when the fx app starts.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-statement writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.LocationModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate locations table")
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolWaits logs when requests had to wait for a pooled connection.
// Long waits usually mean nearby searches are saturating the pool.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats := sqlDB.Stats()
		waits := stats.WaitCount - last.WaitCount
		waited := stats.WaitDuration - last.WaitDuration
		last = stats

		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}

		logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("openConns", stats.OpenConnections),
			slog.Int("inUseConns", stats.InUse),
			slog.Int("maxOpenConns", stats.MaxOpenConnections),
		)
	}
}
