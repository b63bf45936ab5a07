package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteSessionRepo stores logged study sessions.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.StudySession) error {
	indices, err := json.Marshal(s.SubtopicIndices)
	if err != nil {
		return fmt.Errorf("encoding subtopic indices: %w", err)
	}

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `INSERT INTO study_sessions (id, date, topic_id, subtopic_indices,
		planned_hours, actual_hours, completed, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		domain.DateKey(s.Date),
		s.TopicID,
		string(indices),
		s.PlannedHours,
		s.ActualHours,
		boolToInt(s.Completed),
		s.Notes,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("creating study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	query := `SELECT id, date, topic_id, subtopic_indices, planned_hours,
		actual_hours, completed, notes, created_at
		FROM study_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.StudySession, error) {
	query := `SELECT id, date, topic_id, subtopic_indices, planned_hours,
		actual_hours, completed, notes, created_at
		FROM study_sessions WHERE date = ? ORDER BY created_at`
	return r.list(ctx, query, domain.DateKey(date))
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	query := `SELECT id, date, topic_id, subtopic_indices, planned_hours,
		actual_hours, completed, notes, created_at
		FROM study_sessions WHERE date >= ? ORDER BY date, created_at`
	return r.list(ctx, query, domain.DateKey(cutoff))
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM study_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting study session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("study session: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) list(ctx context.Context, query string, args ...any) ([]*domain.StudySession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing study sessions: %w", err)
	}
	defer rows.Close()

	var out []*domain.StudySession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning study session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study sessions: %w", err)
	}
	return out, nil
}

func scanSession(scan func(...any) error) (*domain.StudySession, error) {
	var s domain.StudySession
	var dateStr, indicesJSON, createdStr string
	var completed int
	if err := scan(&s.ID, &dateStr, &s.TopicID, &indicesJSON,
		&s.PlannedHours, &s.ActualHours, &completed, &s.Notes, &createdStr); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	s.Date = date
	s.Completed = intToBool(completed)
	if err := json.Unmarshal([]byte(indicesJSON), &s.SubtopicIndices); err != nil {
		return nil, fmt.Errorf("decoding subtopic indices: %w", err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	return &s, nil
}
