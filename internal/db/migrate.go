package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateConstraintTypes(db); err != nil {
		return fmt.Errorf("migrating day_constraints type constraint: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_config (
		id         TEXT PRIMARY KEY DEFAULT 'default',
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		lab_days   TEXT NOT NULL DEFAULT 'tuesday,thursday',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS day_constraints (
		date        TEXT PRIMARY KEY,
		type        TEXT NOT NULL
		            CHECK(type IN ('college','lab','holiday','exam','weekend','available')),
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS topic_progress (
		topic_id     TEXT PRIMARY KEY,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS subtopic_progress (
		topic_id       TEXT NOT NULL,
		subtopic_index INTEGER NOT NULL CHECK(subtopic_index >= 0),
		completed      INTEGER NOT NULL DEFAULT 0,
		completed_at   TEXT,
		PRIMARY KEY (topic_id, subtopic_index)
	)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id               TEXT PRIMARY KEY,
		date             TEXT NOT NULL,
		topic_id         TEXT NOT NULL,
		subtopic_indices TEXT NOT NULL DEFAULT '[]',
		planned_hours    REAL NOT NULL DEFAULT 0,
		actual_hours     REAL NOT NULL DEFAULT 0,
		completed        INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON study_sessions(date)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_topic ON study_sessions(topic_id)`,

	`CREATE TABLE IF NOT EXISTS study_state (
		id                  TEXT PRIMARY KEY DEFAULT 'default',
		total_hours_studied REAL NOT NULL DEFAULT 0,
		last_updated        TEXT NOT NULL DEFAULT ''
	)`,

	// Seed the singleton aggregate row
	`INSERT OR IGNORE INTO study_state (id) VALUES ('default')`,

	// Add notes to study_sessions
	`ALTER TABLE study_sessions ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}

// migrateConstraintTypes rebuilds day_constraints when its CHECK
// predates the 'weekend' and 'available' override types. SQLite cannot
// alter a CHECK in place, so the table is copied through a rename.
func migrateConstraintTypes(db *sql.DB) error {
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring db connection: %w", err)
	}
	defer conn.Close()

	var createSQL string
	if err := conn.QueryRowContext(ctx, `SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'day_constraints'`).Scan(&createSQL); err != nil {
		return fmt.Errorf("loading day_constraints schema: %w", err)
	}
	if strings.Contains(strings.ToLower(createSQL), "'available'") {
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS day_constraints_new`); err != nil {
		return fmt.Errorf("dropping stale day_constraints_new: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `CREATE TABLE day_constraints_new (
		date        TEXT PRIMARY KEY,
		type        TEXT NOT NULL
		            CHECK(type IN ('college','lab','holiday','exam','weekend','available')),
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating day_constraints_new: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO day_constraints_new (date, type, description, created_at)
		SELECT date, type, description, created_at FROM day_constraints`); err != nil {
		return fmt.Errorf("copying day_constraints data: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DROP TABLE day_constraints`); err != nil {
		return fmt.Errorf("dropping old day_constraints: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `ALTER TABLE day_constraints_new RENAME TO day_constraints`); err != nil {
		return fmt.Errorf("renaming day_constraints_new: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing day_constraints migration: %w", err)
	}
	committed = true

	return nil
}
