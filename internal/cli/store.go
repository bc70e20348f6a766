package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"awesomedevevents/config"
	"awesomedevevents/internal/domain"
	"awesomedevevents/internal/repository/postgres"
	"awesomedevevents/internal/repository/sqlite"
	"awesomedevevents/migrations"
)

// store bundles the repositories of one backend with its closer.
type store struct {
	events   domain.EventRepository
	speakers domain.SpeakerRepository
	tx       domain.Transactor
	close    func() error
}

// openStore connects to the backend named by cfg.StorageDriver and, when
// AutoMigrate is set, brings its schema up to date.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := sqlite.CreateSchema(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		logger.Info("using sqlite store", "dsn", cfg.SQLiteDSN)
		return &store{
			events:   sqlite.NewEventRepository(db),
			speakers: sqlite.NewSpeakerRepository(db),
			tx:       sqlite.NewTransactor(db),
			close:    db.Close,
		}, nil

	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := migrations.Up(logger, cfg.DBUrl); err != nil {
				return nil, err
			}
		}
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		logger.Info("using postgres store")
		return &store{
			events:   postgres.NewEventRepository(db),
			speakers: postgres.NewSpeakerRepository(db),
			tx:       postgres.NewTransactor(db),
			close:    db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}
