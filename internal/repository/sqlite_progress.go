package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteProgressRepo persists the per-topic and per-subtopic completion
// records plus the aggregate study totals.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

// Load assembles the full progress record. A fresh database yields an
// empty record, never ErrNotFound.
func (r *SQLiteProgressRepo) Load(ctx context.Context) (*domain.UserProgress, error) {
	up := domain.NewUserProgress()

	rows, err := r.db.QueryContext(ctx, `SELECT topic_id, completed, completed_at FROM topic_progress`)
	if err != nil {
		return nil, fmt.Errorf("loading topic progress: %w", err)
	}
	for rows.Next() {
		var topicID string
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&topicID, &completed, &completedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning topic progress: %w", err)
		}
		up.CompletedTopics[topicID] = intToBool(completed)
		up.TopicsProgress[topicID] = &domain.TopicProgress{
			TopicID:     topicID,
			Completed:   intToBool(completed),
			CompletedAt: parseNullableTime(completedAt, time.RFC3339),
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating topic progress: %w", err)
	}
	rows.Close()

	subRows, err := r.db.QueryContext(ctx,
		`SELECT topic_id, subtopic_index, completed, completed_at FROM subtopic_progress ORDER BY topic_id, subtopic_index`)
	if err != nil {
		return nil, fmt.Errorf("loading subtopic progress: %w", err)
	}
	for subRows.Next() {
		var topicID string
		var sp domain.SubtopicProgress
		var completed int
		var completedAt sql.NullString
		if err := subRows.Scan(&topicID, &sp.SubtopicIndex, &completed, &completedAt); err != nil {
			subRows.Close()
			return nil, fmt.Errorf("scanning subtopic progress: %w", err)
		}
		sp.Completed = intToBool(completed)
		sp.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

		tp, ok := up.TopicsProgress[topicID]
		if !ok {
			tp = &domain.TopicProgress{TopicID: topicID}
			up.TopicsProgress[topicID] = tp
		}
		tp.SubtopicsProgress = append(tp.SubtopicsProgress, sp)
	}
	if err := subRows.Err(); err != nil {
		subRows.Close()
		return nil, fmt.Errorf("iterating subtopic progress: %w", err)
	}
	subRows.Close()

	for _, tp := range up.TopicsProgress {
		sort.Slice(tp.SubtopicsProgress, func(i, j int) bool {
			return tp.SubtopicsProgress[i].SubtopicIndex < tp.SubtopicsProgress[j].SubtopicIndex
		})
	}

	var totalHours float64
	var lastUpdated string
	err = r.db.QueryRowContext(ctx,
		`SELECT total_hours_studied, last_updated FROM study_state WHERE id = 'default'`).
		Scan(&totalHours, &lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("loading study state: %w", err)
	}
	up.TotalHoursStudied = totalHours
	if lastUpdated != "" {
		up.LastUpdated, _ = time.Parse(time.RFC3339, lastUpdated)
	}

	return up, nil
}

func (r *SQLiteProgressRepo) SetTopicCompleted(ctx context.Context, topicID string, completed bool, completedAt *time.Time) error {
	query := `INSERT INTO topic_progress (topic_id, completed, completed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(topic_id) DO UPDATE SET
			completed    = excluded.completed,
			completed_at = excluded.completed_at`
	_, err := r.db.ExecContext(ctx, query,
		topicID,
		boolToInt(completed),
		nullableTimeToString(completedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting topic progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) UpsertSubtopic(ctx context.Context, topicID string, sp domain.SubtopicProgress) error {
	query := `INSERT INTO subtopic_progress (topic_id, subtopic_index, completed, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(topic_id, subtopic_index) DO UPDATE SET
			completed    = excluded.completed,
			completed_at = excluded.completed_at`
	_, err := r.db.ExecContext(ctx, query,
		topicID,
		sp.SubtopicIndex,
		boolToInt(sp.Completed),
		nullableTimeToString(sp.CompletedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting subtopic progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) SaveTotals(ctx context.Context, totalHours float64, lastUpdated time.Time) error {
	query := `UPDATE study_state SET total_hours_studied = ?, last_updated = ? WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query,
		totalHours,
		lastUpdated.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving study totals: %w", err)
	}
	return nil
}
