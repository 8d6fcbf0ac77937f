package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/ports"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// ErrBackendNotShared is returned by commands that read state written by
// another process, such as the report command, when the registry lives in
// process memory.
var ErrBackendNotShared = errors.New("backend is not shared between processes")

// RequireSharedBackend fails unless config selects a store that outlives the
// process, so a one-shot command can see what the server wrote.
func RequireSharedBackend(config Config) error {
	if config.Backend == BackendMemory {
		return fmt.Errorf("%w: %q backend starts empty, set BACKEND=%s",
			ErrBackendNotShared, config.Backend, BackendPostgres)
	}
	return nil
}

// Backend is an opened registry store.
type Backend struct {
	UoWFactory ports.UnitOfWorkFactory
	close      func() error
}

// Close releases the store's connections. Closing the memory backend is a
// no-op.
func (b Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend opens the store selected by config.Backend. The Postgres schema
// is migrated on open.
func OpenBackend(config Config, logger *slog.Logger) (Backend, error) {
	switch config.Backend {
	case BackendMemory:
		logger.Info("Using in-memory registry")
		return Backend{UoWFactory: memory.NewUnitOfWorkFactory(memory.NewRegistry())}, nil

	case BackendPostgres:
		dsn, err := config.DSN()
		if err != nil {
			return Backend{}, err
		}

		db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
			Logger: gorm_logger.New(
				slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
				gorm_logger.Config{
					SlowThreshold:             200 * time.Millisecond,
					LogLevel:                  gorm_logger.Warn,
					IgnoreRecordNotFoundError: true,
				},
			),
		})
		if err != nil {
			return Backend{}, fmt.Errorf("connect to postgres: %w", err)
		}

		if err = postgres.Migrate(db); err != nil {
			return Backend{}, fmt.Errorf("migrate schema: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return Backend{}, err
		}

		logger.Info("Using postgres registry", "host", config.DBHost, "db", config.DBName)
		return Backend{
			UoWFactory: postgres.NewGormUnitOfWorkFactory(db),
			close:      sqlDB.Close,
		}, nil

	default:
		return Backend{}, fmt.Errorf("unknown backend %q", config.Backend)
	}
}
