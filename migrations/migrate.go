// Package migrations holds the relational schema and applies it with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Files returns the names of the embedded migration files in lexical order.
func Files() ([]string, error) {
	return fs.Glob(files, "sql/*.sql")
}

// Up applies all pending migrations to the Postgres database at databaseURL.
func Up(logger *slog.Logger, databaseURL string) error {
	return run(logger, databaseURL, func(m *migrate.Migrate) error { return m.Up() })
}

// Down reverts every applied migration.
func Down(logger *slog.Logger, databaseURL string) error {
	return run(logger, databaseURL, func(m *migrate.Migrate) error { return m.Down() })
}

func run(logger *slog.Logger, databaseURL string, step func(m *migrate.Migrate) error) (err error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()
	m.Log = migrateLogger{logger: logger}

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("schema migrated", "version", version, "dirty", dirty)
	return nil
}

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}
