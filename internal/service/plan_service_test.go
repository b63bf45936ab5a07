package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
)

func TestPlanService_InitSeedsDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cfg, err := env.plan.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-06", domain.DateKey(cfg.StartDate))
	assert.Equal(t, "2026-01-31", domain.DateKey(cfg.EndDate))
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Thursday}, cfg.DefaultLabDays)

	stored, err := env.plan.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.StartDate, stored.StartDate)
}

func TestPlanService_InitIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.plan.SetDateRange(ctx, testutil.Date("2025-08-01"), testutil.Date("2026-03-01"))
	require.NoError(t, err)

	cfg, err := env.plan.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", domain.DateKey(cfg.StartDate))
}

func TestPlanService_GetConfigNoPlan(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.plan.GetConfig(context.Background())
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrNoPlan, planErr.Code)
}

func TestPlanService_SetDateRangeRejectsInverted(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.plan.SetDateRange(context.Background(),
		testutil.Date("2026-01-31"), testutil.Date("2025-07-06"))
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrInvalidDateRange, planErr.Code)
}

func TestPlanService_SetLabDaysDedupes(t *testing.T) {
	env := newTestEnv(t)

	cfg, err := env.plan.SetLabDays(context.Background(),
		[]time.Weekday{time.Monday, time.Wednesday, time.Monday})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, cfg.DefaultLabDays)
}

func TestPlanService_ConstraintLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.plan.AddConstraint(ctx,
		testutil.NewTestConstraint("2025-09-15", domain.DayExam, "OS midterm")))
	require.NoError(t, env.plan.AddConstraint(ctx,
		testutil.NewTestConstraint("2025-08-15", domain.DayHoliday, "Independence Day")))

	all, err := env.plan.ListConstraints(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2025-08-15", domain.DateKey(all[0].Date))
	assert.Equal(t, "2025-09-15", domain.DateKey(all[1].Date))

	require.NoError(t, env.plan.RemoveConstraint(ctx, testutil.Date("2025-08-15")))
	all, err = env.plan.ListConstraints(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlanService_AddConstraintRejectsBadType(t *testing.T) {
	env := newTestEnv(t)

	c := testutil.NewTestConstraint("2025-09-15", domain.DayType("party"), "")
	err := env.plan.AddConstraint(context.Background(), c)
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
}

func TestPlanService_AddConstraintRejectsZeroDate(t *testing.T) {
	env := newTestEnv(t)

	err := env.plan.AddConstraint(context.Background(), &domain.DayConstraint{Type: domain.DayExam})
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrInvalidDate, planErr.Code)
}

func TestPlanService_RemoveConstraintMissing(t *testing.T) {
	env := newTestEnv(t)

	err := env.plan.RemoveConstraint(context.Background(), testutil.Date("2025-12-25"))
	var planErr *contract.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, contract.ErrInvalidDate, planErr.Code)
}
