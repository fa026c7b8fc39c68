package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent so the
// full list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS dataset_loads (
		id           TEXT PRIMARY KEY,
		source       TEXT NOT NULL,
		row_count    INTEGER NOT NULL DEFAULT 0 CHECK(row_count >= 0),
		staff_policy TEXT NOT NULL DEFAULT 'unspecified'
		             CHECK(staff_policy IN ('unspecified','manager_required')),
		loaded_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS records (
		load_id      TEXT NOT NULL REFERENCES dataset_loads(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		region       TEXT NOT NULL,
		project      TEXT NOT NULL,
		sub_division TEXT NOT NULL,
		staff_lead   TEXT NOT NULL,
		role         TEXT NOT NULL,
		PRIMARY KEY (load_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_region ON records(region, project, sub_division)`,
	`CREATE INDEX IF NOT EXISTS idx_records_staff ON records(staff_lead)`,
	`CREATE INDEX IF NOT EXISTS idx_dataset_loads_loaded_at ON dataset_loads(loaded_at)`,
}
