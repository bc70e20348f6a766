// Package sqlite is a bun-backed store over an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Open connects to the SQLite database at dsn. The pool is limited to one
// connection, which serializes writers and keeps ":memory:" databases alive.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateSchema creates the events and event_speakers tables when missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*eventModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}
	if _, err := db.NewCreateTable().
		Model((*speakerModel)(nil)).
		IfNotExists().
		ForeignKey(`("dev_event_id") REFERENCES "events" ("id")`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create event_speakers table: %w", err)
	}
	if _, err := db.NewCreateIndex().
		Model((*speakerModel)(nil)).
		Index("idx_event_speakers_dev_event_id").
		Column("dev_event_id").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create event_speakers index: %w", err)
	}
	return nil
}
