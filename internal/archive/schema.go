package archive

import (
	"context"
	"database/sql"
	"fmt"
)

const schemaVersion = 1

// schemaStatements are executed in order to create the database schema.
// All use IF NOT EXISTS for idempotent re-application.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT    PRIMARY KEY,
		reference  TEXT    NOT NULL,
		seed       INTEGER NOT NULL,
		digest     TEXT    NOT NULL,
		target     INTEGER NOT NULL,
		attempts   INTEGER NOT NULL,
		created_at TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,

	`CREATE TABLE IF NOT EXISTS rejections (
		run_id TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		reason TEXT    NOT NULL,
		count  INTEGER NOT NULL,
		PRIMARY KEY (run_id, reason)
	)`,

	`CREATE TABLE IF NOT EXISTS fixtures (
		run_id     TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		expression TEXT    NOT NULL,
		expected   TEXT    NOT NULL,
		PRIMARY KEY (run_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fixtures_expression ON fixtures(expression)`,
}

// migrate creates or updates the database schema to the latest version.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)"); err != nil {
		return fmt.Errorf("archive: create schema_version: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("archive: read schema version: %w", err)
	}

	if current >= schemaVersion {
		return nil
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("archive: migrate: %w\nstatement: %s", err, stmt)
		}
	}

	if _, err := db.ExecContext(ctx, "INSERT OR REPLACE INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("archive: record schema version: %w", err)
	}

	return nil
}
