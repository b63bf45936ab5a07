package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running migrations a second time must be a no-op.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"schedule_config", "day_constraints", "topic_progress",
		"subtopic_progress", "study_sessions", "study_state",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"idx_sessions_date", "idx_sessions_topic"}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to
	// file DBs, so the DSN's journal_mode pragma is a no-op here.
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "memory", mode)
}

func TestOpenDB_BusyTimeoutApplied(t *testing.T) {
	db := openTestDB(t)

	var ms int
	err := db.QueryRow(`PRAGMA busy_timeout`).Scan(&ms)
	require.NoError(t, err)
	assert.Equal(t, 5000, ms)
}

func TestMigrate_SeedsStudyState(t *testing.T) {
	db := openTestDB(t)

	var id string
	var hours float64
	err := db.QueryRow(`SELECT id, total_hours_studied FROM study_state WHERE id = 'default'`).Scan(&id, &hours)
	require.NoError(t, err)
	assert.Equal(t, "default", id)
	assert.Zero(t, hours)
}

func TestMigrate_ConstraintTypeCheck(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO day_constraints (date, type, description, created_at)
		VALUES ('2025-08-15', 'party', '', '2025-08-01T00:00:00Z')`)
	assert.Error(t, err, "unknown constraint type should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO day_constraints (date, type, description, created_at)
		VALUES ('2025-08-15', 'holiday', 'Independence Day', '2025-08-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_ConstraintDatePrimaryKey(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO day_constraints (date, type, created_at)
		VALUES ('2025-09-10', 'exam', '2025-08-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO day_constraints (date, type, created_at)
		VALUES ('2025-09-10', 'holiday', '2025-08-01T00:00:00Z')`)
	assert.Error(t, err, "second constraint on the same date should violate the primary key")
}

func TestMigrate_SubtopicProgressCompositeKey(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO subtopic_progress (topic_id, subtopic_index, completed)
		VALUES ('arrays', 0, 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO subtopic_progress (topic_id, subtopic_index, completed)
		VALUES ('arrays', 0, 0)`)
	assert.Error(t, err, "duplicate (topic, index) pair should violate composite primary key")

	_, err = db.Exec(`INSERT INTO subtopic_progress (topic_id, subtopic_index, completed)
		VALUES ('arrays', -1, 1)`)
	assert.Error(t, err, "negative subtopic index should be rejected by CHECK constraint")
}

func TestMigrate_StudySessionDefaults(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO study_sessions (id, date, topic_id, created_at)
		VALUES ('s1', '2025-07-07', 'arrays', '2025-07-07T00:00:00Z')`)
	require.NoError(t, err)

	var indices, notes string
	var planned float64
	var completed int
	err = db.QueryRow(`SELECT subtopic_indices, notes, planned_hours, completed FROM study_sessions WHERE id = 's1'`).
		Scan(&indices, &notes, &planned, &completed)
	require.NoError(t, err)
	assert.Equal(t, "[]", indices)
	assert.Equal(t, "", notes)
	assert.Zero(t, planned)
	assert.Zero(t, completed)
}

func TestMigrate_ScheduleConfigLabDaysDefault(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO schedule_config (id, start_date, end_date, created_at, updated_at)
		VALUES ('default', '2025-07-06', '2026-01-31', '2025-07-06T00:00:00Z', '2025-07-06T00:00:00Z')`)
	require.NoError(t, err)

	var labDays string
	err = db.QueryRow(`SELECT lab_days FROM schedule_config WHERE id = 'default'`).Scan(&labDays)
	require.NoError(t, err)
	assert.Equal(t, "tuesday,thursday", labDays)
}

func TestMigrateConstraintTypes_Idempotent(t *testing.T) {
	db := openTestDB(t)

	err := migrateConstraintTypes(db)
	require.NoError(t, err)
}

func TestMigrateConstraintTypes_UpgradesLegacySchema(t *testing.T) {
	legacyDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { legacyDB.Close() })

	_, err = legacyDB.Exec(`CREATE TABLE day_constraints (
		date        TEXT PRIMARY KEY,
		type        TEXT NOT NULL
		            CHECK(type IN ('college','lab','holiday','exam')),
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`)
	require.NoError(t, err)

	_, err = legacyDB.Exec(`INSERT INTO day_constraints (date, type, description, created_at)
		VALUES ('2025-09-10', 'exam', 'Midterm', '2025-08-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, migrateConstraintTypes(legacyDB))

	var createSQL string
	err = legacyDB.QueryRow(`SELECT sql FROM sqlite_master WHERE type='table' AND name='day_constraints'`).Scan(&createSQL)
	require.NoError(t, err)
	assert.Contains(t, createSQL, "'available'")

	var typ, desc string
	err = legacyDB.QueryRow(`SELECT type, description FROM day_constraints WHERE date = '2025-09-10'`).Scan(&typ, &desc)
	require.NoError(t, err)
	assert.Equal(t, "exam", typ)
	assert.Equal(t, "Midterm", desc)

	_, err = legacyDB.Exec(`INSERT INTO day_constraints (date, type, created_at)
		VALUES ('2025-12-25', 'available', '2025-08-01T00:00:00Z')`)
	assert.NoError(t, err, "rebuilt table should accept the new override types")
}
