package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all simulator tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS workloads (
		name       TEXT PRIMARY KEY,
		quantum    INTEGER NOT NULL DEFAULT 0,
		jobs       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workloads_created_at ON workloads(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
