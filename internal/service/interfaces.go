package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// PlanService manages the schedule configuration and day constraints.
type PlanService interface {
	// Init seeds the default configuration if none exists yet. It is
	// safe to call on every startup.
	Init(ctx context.Context) (*domain.ScheduleConfig, error)
	GetConfig(ctx context.Context) (*domain.ScheduleConfig, error)
	SetDateRange(ctx context.Context, start, end time.Time) (*domain.ScheduleConfig, error)
	SetLabDays(ctx context.Context, days []time.Weekday) (*domain.ScheduleConfig, error)
	AddConstraint(ctx context.Context, c *domain.DayConstraint) error
	RemoveConstraint(ctx context.Context, date time.Time) error
	ListConstraints(ctx context.Context) ([]domain.DayConstraint, error)
}

// ProgressService applies progress mutations through the tracker and
// persists them transactionally.
type ProgressService interface {
	MarkTopicComplete(ctx context.Context, topicID string, completed bool) error
	MarkSubtopicComplete(ctx context.Context, topicID string, index int, completed bool) error
	LogSession(ctx context.Context, s *domain.StudySession) error
	ListSessions(ctx context.Context, date time.Time) ([]*domain.StudySession, error)
	ListRecentSessions(ctx context.Context, days int) ([]*domain.StudySession, error)
	DeleteSession(ctx context.Context, id string) error
}

// PlannerService generates study plans. It is read-only over progress.
type PlannerService interface {
	GenerateDailyPlan(ctx context.Context, req contract.DailyPlanRequest) (*contract.DailyStudySuggestion, error)
	GenerateFullSchedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}

// StatusService reports the progress overview across all weeks.
type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}
