package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLitePlanRepo stores the singleton schedule configuration.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	query := `SELECT id, start_date, end_date, lab_days, created_at, updated_at
		FROM schedule_config WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var cfg domain.ScheduleConfig
	var startStr, endStr, labDays, createdStr, updatedStr string
	err := row.Scan(&cfg.ID, &startStr, &endStr, &labDays, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule config: %w", err)
	}

	if cfg.StartDate, err = domain.ParseDate(startStr); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if cfg.EndDate, err = domain.ParseDate(endStr); err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	if cfg.DefaultLabDays, err = parseLabDays(labDays); err != nil {
		return nil, fmt.Errorf("parsing lab days: %w", err)
	}
	cfg.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	cfg.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)

	return &cfg, nil
}

func (r *SQLitePlanRepo) Save(ctx context.Context, cfg *domain.ScheduleConfig) error {
	id := cfg.ID
	if id == "" {
		id = "default"
	}

	query := `INSERT INTO schedule_config (id, start_date, end_date, lab_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date = excluded.start_date,
			end_date   = excluded.end_date,
			lab_days   = excluded.lab_days,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		id,
		domain.DateKey(cfg.StartDate),
		domain.DateKey(cfg.EndDate),
		formatLabDays(cfg.DefaultLabDays),
		cfg.CreatedAt.UTC().Format(time.RFC3339),
		cfg.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving schedule config: %w", err)
	}
	return nil
}

func parseLabDays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		d, err := domain.ParseWeekday(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func formatLabDays(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, domain.WeekdayName(d))
	}
	return strings.Join(names, ",")
}
