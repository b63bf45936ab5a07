package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/calendar"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/progress"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type statusService struct {
	curr        *curriculum.Curriculum
	plans       repository.PlanRepo
	constraints repository.ConstraintRepo
	progress    repository.ProgressRepo
	now         func() time.Time
}

func NewStatusService(
	curr *curriculum.Curriculum,
	plans repository.PlanRepo,
	constraints repository.ConstraintRepo,
	progressRepo repository.ProgressRepo,
) StatusService {
	return &statusService{
		curr:        curr,
		plans:       plans,
		constraints: constraints,
		progress:    progressRepo,
		now:         time.Now,
	}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	cfg, err := s.plans.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.PlanError{
				Code:    contract.ErrNoPlan,
				Message: "no schedule configured, run init first",
			}
		}
		return nil, err
	}

	constraints, err := s.constraints.List(ctx)
	if err != nil {
		return nil, err
	}

	up, err := s.progress.Load(ctx)
	if err != nil {
		return nil, err
	}
	tr := progress.NewTracker(s.curr, up)

	now := domain.DateOnly(s.now())
	if req.Now != nil {
		now = domain.DateOnly(*req.Now)
	}
	currentWeek := scheduler.CurrentWeek(cfg.StartDate, now)
	analyses := scheduler.Analyze(s.curr, *cfg, tr, now)
	byTopic := make(map[string]scheduler.TopicAnalysis, len(analyses))
	for _, a := range analyses {
		byTopic[a.TopicID] = a
	}

	classifier := calendar.NewClassifier(*cfg, constraints)
	stats := calendar.Stats(classifier.Remaining(now))

	daysRemaining := int(math.Ceil(float64(cfg.EndDate.Sub(now)) / float64(24*time.Hour)))
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	resp := &contract.StatusResponse{
		GeneratedAt:         s.now().UTC(),
		CurrentWeek:         currentWeek,
		TotalWeeks:          scheduler.TotalWeeks(*cfg),
		DaysRemaining:       daysRemaining,
		OverallPercentage:   tr.OverallPercentage(),
		CompletedTopics:     tr.CompletedTopicCount(),
		TotalTopics:         s.curr.TopicCount(),
		TotalHoursStudied:   up.TotalHoursStudied,
		TotalAvailableHours: stats.TotalAvailableHours,
	}

	for _, week := range s.curr.Weeks() {
		rollup, ok := tr.WeekRollup(week.WeekNumber)
		if !ok {
			continue
		}
		ws := contract.WeekStatus{
			WeekNumber:           week.WeekNumber,
			Focus:                week.Focus,
			CompletionPercentage: rollup.Percentage,
			CompletedTopics:      rollup.CompletedTopics,
			TotalTopics:          rollup.TotalTopics,
			BehindSchedule:       week.WeekNumber < currentWeek && rollup.Percentage < 100,
		}
		for _, topic := range week.Topics {
			a := byTopic[topic.ID]
			ws.Topics = append(ws.Topics, contract.TopicStatus{
				TopicID:              topic.ID,
				Title:                topic.Title,
				WeekNumber:           week.WeekNumber,
				CompletionPercentage: a.CompletionPercentage,
				UrgencyLevel:         string(a.UrgencyLevel),
				IsOnTrack:            a.IsOnTrack,
				CompletedSubtopics:   a.CompletedSubtopics,
				TotalSubtopics:       a.TotalSubtopics,
			})
		}
		resp.Weeks = append(resp.Weeks, ws)
	}

	return resp, nil
}
