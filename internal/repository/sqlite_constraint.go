package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteConstraintRepo stores day constraints keyed by calendar date.
type SQLiteConstraintRepo struct {
	db db.DBTX
}

// NewSQLiteConstraintRepo creates a new SQLiteConstraintRepo.
func NewSQLiteConstraintRepo(conn db.DBTX) *SQLiteConstraintRepo {
	return &SQLiteConstraintRepo{db: conn}
}

func (r *SQLiteConstraintRepo) Upsert(ctx context.Context, c *domain.DayConstraint) error {
	query := `INSERT INTO day_constraints (date, type, description, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			type        = excluded.type,
			description = excluded.description`
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query,
		domain.DateKey(c.Date),
		string(c.Type),
		c.Description,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting day constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DayConstraint, error) {
	query := `SELECT date, type, description, created_at FROM day_constraints WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DateKey(date))

	c, err := scanConstraint(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("day constraint: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning day constraint: %w", err)
	}
	return c, nil
}

func (r *SQLiteConstraintRepo) List(ctx context.Context) ([]domain.DayConstraint, error) {
	query := `SELECT date, type, description, created_at FROM day_constraints ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing day constraints: %w", err)
	}
	defer rows.Close()

	var out []domain.DayConstraint
	for rows.Next() {
		c, err := scanConstraint(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning day constraint: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day constraints: %w", err)
	}
	return out, nil
}

func (r *SQLiteConstraintRepo) Delete(ctx context.Context, date time.Time) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM day_constraints WHERE date = ?`, domain.DateKey(date))
	if err != nil {
		return fmt.Errorf("deleting day constraint: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("day constraint: %w", ErrNotFound)
	}
	return nil
}

func scanConstraint(scan func(...any) error) (*domain.DayConstraint, error) {
	var dateStr, typeStr, createdStr string
	var c domain.DayConstraint
	if err := scan(&dateStr, &typeStr, &c.Description, &createdStr); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	dayType, err := domain.ParseDayType(typeStr)
	if err != nil {
		return nil, err
	}

	c.Date = date
	c.Type = dayType
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	return &c, nil
}
