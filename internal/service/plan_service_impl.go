package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
)

type planService struct {
	plans       repository.PlanRepo
	constraints repository.ConstraintRepo
	observer    UseCaseObserver
	now         func() time.Time
}

func NewPlanService(plans repository.PlanRepo, constraints repository.ConstraintRepo, observer UseCaseObserver) PlanService {
	return &planService{
		plans:       plans,
		constraints: constraints,
		observer:    observerOrNoop(observer),
		now:         time.Now,
	}
}

func (s *planService) Init(ctx context.Context) (*domain.ScheduleConfig, error) {
	cfg, err := s.plans.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	seed := domain.DefaultScheduleConfig()
	seed.ID = "default"
	now := s.now().UTC()
	seed.CreatedAt = now
	seed.UpdatedAt = now

	err = observe(ctx, s.observer, "plan.init", nil, func() error {
		return s.plans.Save(ctx, &seed)
	})
	if err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *planService) GetConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	cfg, err := s.plans.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &contract.PlanError{
			Code:    contract.ErrNoPlan,
			Message: "no schedule configured, run init first",
		}
	}
	return cfg, err
}

func (s *planService) SetDateRange(ctx context.Context, start, end time.Time) (*domain.ScheduleConfig, error) {
	cfg, err := s.Init(ctx)
	if err != nil {
		return nil, err
	}

	cfg.StartDate = domain.DateOnly(start)
	cfg.EndDate = domain.DateOnly(end)
	if err := cfg.Validate(); err != nil {
		return nil, &contract.PlanError{
			Code:    contract.ErrInvalidDateRange,
			Message: err.Error(),
		}
	}
	cfg.UpdatedAt = s.now().UTC()

	err = observe(ctx, s.observer, "plan.set_date_range", map[string]any{
		"start": domain.DateKey(cfg.StartDate),
		"end":   domain.DateKey(cfg.EndDate),
	}, func() error {
		return s.plans.Save(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *planService) SetLabDays(ctx context.Context, days []time.Weekday) (*domain.ScheduleConfig, error) {
	cfg, err := s.Init(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[time.Weekday]bool, len(days))
	deduped := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			deduped = append(deduped, d)
		}
	}
	cfg.DefaultLabDays = deduped
	cfg.UpdatedAt = s.now().UTC()

	err = observe(ctx, s.observer, "plan.set_lab_days", map[string]any{
		"count": len(deduped),
	}, func() error {
		return s.plans.Save(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *planService) AddConstraint(ctx context.Context, c *domain.DayConstraint) error {
	if c.Date.IsZero() {
		return &contract.PlanError{
			Code:    contract.ErrInvalidDate,
			Message: "constraint date is required",
		}
	}
	if _, err := domain.ParseDayType(string(c.Type)); err != nil {
		return &contract.PlanError{
			Code:    contract.ErrInvalidDate,
			Message: err.Error(),
		}
	}
	c.Date = domain.DateOnly(c.Date)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}

	return observe(ctx, s.observer, "plan.add_constraint", map[string]any{
		"date": domain.DateKey(c.Date),
		"type": string(c.Type),
	}, func() error {
		return s.constraints.Upsert(ctx, c)
	})
}

func (s *planService) RemoveConstraint(ctx context.Context, date time.Time) error {
	err := s.constraints.Delete(ctx, domain.DateOnly(date))
	if errors.Is(err, repository.ErrNotFound) {
		return &contract.PlanError{
			Code:    contract.ErrInvalidDate,
			Message: fmt.Sprintf("no constraint on %s", domain.DateKey(date)),
		}
	}
	return err
}

func (s *planService) ListConstraints(ctx context.Context) ([]domain.DayConstraint, error) {
	return s.constraints.List(ctx)
}
