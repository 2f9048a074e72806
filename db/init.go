package db

import (
	"context"
	"fmt"

	"github.com/uepb/eventos.go/db/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL
	)`

const pgSchema = `
	CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL
	)`

// Init creates the events table when missing and, if seed is set and the
// table holds no rows, inserts the seed events.
func Init(ctx context.Context, db *bun.DB, seed bool) error {
	schema := sqliteSchema
	if db.Dialect().Name() == dialect.PG {
		schema = pgSchema
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}
	if !seed {
		return nil
	}

	count, err := db.NewSelect().Model((*models.Event)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedEvents := models.SeedEvents()
	if _, err := db.NewInsert().Model(&seedEvents).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert seed events: %w", err)
	}
	return nil
}
