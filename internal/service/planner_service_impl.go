package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/studyplan/internal/calendar"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/enrich"
	"github.com/alexanderramin/studyplan/internal/progress"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type plannerService struct {
	curr        *curriculum.Curriculum
	plans       repository.PlanRepo
	constraints repository.ConstraintRepo
	progress    repository.ProgressRepo
	advisor     enrich.Advisor
	observer    UseCaseObserver
	now         func() time.Time
}

// NewPlannerService creates the plan generator. The advisor may be nil,
// in which case schedules are never enriched.
func NewPlannerService(
	curr *curriculum.Curriculum,
	plans repository.PlanRepo,
	constraints repository.ConstraintRepo,
	progressRepo repository.ProgressRepo,
	advisor enrich.Advisor,
	observer UseCaseObserver,
) PlannerService {
	return &plannerService{
		curr:        curr,
		plans:       plans,
		constraints: constraints,
		progress:    progressRepo,
		advisor:     advisor,
		observer:    observerOrNoop(observer),
		now:         time.Now,
	}
}

// planContext gathers everything a generation pass reads: the config,
// constraints, classifier, and the tracker over current progress.
type planContext struct {
	cfg         *domain.ScheduleConfig
	constraints []domain.DayConstraint
	classifier  *calendar.Classifier
	tracker     *progress.Tracker
}

func (s *plannerService) loadContext(ctx context.Context) (*planContext, error) {
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

	return &planContext{
		cfg:         cfg,
		constraints: constraints,
		classifier:  calendar.NewClassifier(*cfg, constraints),
		tracker:     progress.NewTracker(s.curr, up),
	}, nil
}

func (s *plannerService) GenerateDailyPlan(ctx context.Context, req contract.DailyPlanRequest) (*contract.DailyStudySuggestion, error) {
	pc, err := s.loadContext(ctx)
	if err != nil {
		return nil, err
	}

	date := domain.DateOnly(s.now())
	if req.Date != nil {
		date = domain.DateOnly(*req.Date)
	}

	var suggestion contract.DailyStudySuggestion
	err = observe(ctx, s.observer, "planner.daily_plan", map[string]any{
		"date": domain.DateKey(date),
	}, func() error {
		day := pc.classifier.DayInfo(date)
		currentWeek := scheduler.CurrentWeek(pc.cfg.StartDate, date)

		analyses := scheduler.Analyze(s.curr, *pc.cfg, pc.tracker, date)
		remaining := scheduler.Remaining(analyses)
		scored := scheduler.ScoreAll(remaining, currentWeek)
		scheduler.CanonicalSort(scored)

		suggestion = scheduler.GenerateDailyPlan(day, scored, s.curr, pc.tracker, currentWeek)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (s *plannerService) GenerateFullSchedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	pc, err := s.loadContext(ctx)
	if err != nil {
		return nil, err
	}

	from := domain.DateOnly(s.now())
	if req.From != nil {
		from = domain.DateOnly(*req.From)
	}

	var resp *contract.ScheduleResponse
	err = observe(ctx, s.observer, "planner.full_schedule", map[string]any{
		"from":   domain.DateKey(from),
		"enrich": req.Enrich,
	}, func() error {
		days := pc.classifier.Remaining(from)
		stats := calendar.Stats(days)

		analyses := scheduler.Analyze(s.curr, *pc.cfg, pc.tracker, from)
		remaining := scheduler.Remaining(analyses)
		currentWeek := scheduler.CurrentWeek(pc.cfg.StartDate, from)
		scored := scheduler.ScoreAll(remaining, currentWeek)
		scheduler.CanonicalSort(scored)

		neededHours := 0
		for _, a := range remaining {
			neededHours += a.EstimatedHours
		}

		defaults := enrich.Defaults{
			Recommendations: []string{
				scheduler.ProgressRecommendation(s.curr.TopicCount()-len(remaining), s.curr.TopicCount()),
				scheduler.TimeRecommendation(neededHours, stats.TotalAvailableHours),
				scheduler.CoverageRecommendation(remaining),
			},
			Adjustments: []string{
				scheduler.ConstraintAdjustment(len(pc.constraints)),
				scheduler.LabDayAdjustment(len(pc.cfg.DefaultLabDays)),
				scheduler.UrgencyAdjustment(remaining),
			},
		}

		advice := enrich.DeterministicAdvice(
			enrich.BuildPayload(s.curr, remaining, len(pc.constraints), len(pc.cfg.DefaultLabDays)),
			defaults,
		)
		enriched := false
		if req.Enrich && s.advisor != nil {
			payload := enrich.BuildPayload(s.curr, remaining, len(pc.constraints), len(pc.cfg.DefaultLabDays))
			advice, enriched = s.advisor.EnrichSchedule(ctx, payload, defaults)
		}

		ordered := reorderScored(scored, advice.TopicOrder)
		scheduled := scheduler.AllocateTopics(days, ordered)
		guarantee := scheduler.BuildGuarantee(scheduled, stats, remaining, pc.constraints)

		resp = &contract.ScheduleResponse{
			GeneratedAt:         s.now().UTC(),
			ScheduledTopics:     scheduled,
			Recommendations:     advice.Recommendations,
			Adjustments:         advice.Adjustments,
			CompletionGuarantee: guarantee,
			Enriched:            enriched,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// reorderScored arranges the scored topics to follow the advised order.
// Topics missing from the order keep their canonical position at the end.
func reorderScored(scored []scheduler.ScoredTopic, order []string) []scheduler.ScoredTopic {
	if len(order) == 0 {
		return scored
	}
	byID := make(map[string]scheduler.ScoredTopic, len(scored))
	for _, st := range scored {
		byID[st.Analysis.TopicID] = st
	}

	out := make([]scheduler.ScoredTopic, 0, len(scored))
	taken := make(map[string]bool, len(scored))
	for _, id := range order {
		st, ok := byID[id]
		if !ok || taken[id] {
			continue
		}
		taken[id] = true
		out = append(out, st)
	}
	for _, st := range scored {
		if !taken[st.Analysis.TopicID] {
			out = append(out, st)
		}
	}
	return out
}
