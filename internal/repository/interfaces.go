package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
// Repositories wrap it with the aggregate name.
var ErrNotFound = errors.New("not found")

type PlanRepo interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
	Save(ctx context.Context, cfg *domain.ScheduleConfig) error
}

type ConstraintRepo interface {
	Upsert(ctx context.Context, c *domain.DayConstraint) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DayConstraint, error)
	List(ctx context.Context) ([]domain.DayConstraint, error)
	Delete(ctx context.Context, date time.Time) error
}

type ProgressRepo interface {
	Load(ctx context.Context) (*domain.UserProgress, error)
	SetTopicCompleted(ctx context.Context, topicID string, completed bool, completedAt *time.Time) error
	UpsertSubtopic(ctx context.Context, topicID string, sp domain.SubtopicProgress) error
	SaveTotals(ctx context.Context, totalHours float64, lastUpdated time.Time) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.StudySession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error)
	Delete(ctx context.Context, id string) error
}
