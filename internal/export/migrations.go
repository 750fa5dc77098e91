package export

import (
	"context"
	"database/sql"
)

// schema contains the DDL for the archive tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sync_runs (
		id           TEXT PRIMARY KEY,
		started_at   TEXT NOT NULL,
		completed_at TEXT,
		start_date   TEXT NOT NULL,
		end_date     TEXT NOT NULL,
		records      INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS records (
		resource   TEXT NOT NULL,
		id         TEXT NOT NULL,
		day        TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL,
		run_id     TEXT NOT NULL,
		fetched_at TEXT NOT NULL,
		PRIMARY KEY (resource, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_day ON records(day)`,
	`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
