package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/alexanderramin/studyplan/internal/testutil"
)

func newTestApp(t *testing.T) *cli.App {
	t.Helper()
	database := testutil.NewTestDB(t)
	curr, err := curriculum.Load()
	require.NoError(t, err)

	planRepo := repository.NewSQLitePlanRepo(database)
	constraintRepo := repository.NewSQLiteConstraintRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := testutil.NewTestUoW(database)

	return &cli.App{
		Plan:     service.NewPlanService(planRepo, constraintRepo, nil),
		Progress: service.NewProgressService(curr, progressRepo, sessionRepo, uow, nil),
		Planner:  service.NewPlannerService(curr, planRepo, constraintRepo, progressRepo, nil, nil),
		Status:   service.NewStatusService(curr, planRepo, constraintRepo, progressRepo),
		IsInteractive: func() bool {
			return false
		},
	}
}

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInitCmd_SeedsDefaults(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-07-06")
	assert.Contains(t, out, "2026-01-31")
	assert.Contains(t, out, "tuesday, thursday")
}

func TestInitCmd_CustomRange(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "init", "--start", "2025-08-01", "--end", "2026-02-28")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-08-01")
	assert.Contains(t, out, "2026-02-28")
}

func TestInitCmd_RejectsInvertedRange(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "init", "--start", "2026-02-28", "--end", "2025-08-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_DATE_RANGE")
}

func TestTodayCmd_RequiresInit(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "today")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_PLAN")
}

func TestTodayCmd_ShowsPlan(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "today", "--date", "2025-07-09")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-07-09")
	assert.Contains(t, out, "COLLEGE")
	assert.Contains(t, out, "Programming Fundamentals")
}

func TestTodayCmd_BadDate(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	_, err = execute(t, app, "today", "--date", "not-a-date")
	require.Error(t, err)
}

func TestScheduleCmd(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "schedule", "--from", "2025-07-06")
	require.NoError(t, err)
	assert.Contains(t, out, "STUDY SCHEDULE")
	assert.Contains(t, out, "Programming Fundamentals")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.NotContains(t, out, "AI refined")
}

func TestStatusCmd(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "topics done")
	assert.Contains(t, out, "W1")
}

func TestConstraintCmds(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "constraint", "add", "--date", "2025-09-15", "--type", "exam", "--desc", "OS midterm")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-09-15")

	out, err = execute(t, app, "constraint", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-09-15")
	assert.Contains(t, out, "OS midterm")

	out, err = execute(t, app, "constraint", "rm", "2025-09-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	out, err = execute(t, app, "constraint", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No constraints")
}

func TestConstraintAddCmd_RequiresDateWhenNotInteractive(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "constraint", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date is required")
}

func TestConstraintAddCmd_RejectsBadType(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "constraint", "add", "--date", "2025-09-15", "--type", "party")
	require.Error(t, err)
}

func TestDoneCmd(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "done", "programming-fundamentals", "--subtopic", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "subtopic 0")
	assert.Contains(t, out, "complete")

	_, err = execute(t, app, "done", "no-such-topic")
	require.Error(t, err)
}

func TestLabDaysCmd(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "labdays")
	require.NoError(t, err)
	assert.Contains(t, out, "tuesday, thursday")

	out, err = execute(t, app, "labdays", "monday", "friday")
	require.NoError(t, err)
	assert.Contains(t, out, "monday, friday")

	out, err = execute(t, app, "labdays", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "none")
}

func TestSessionCmds(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "init")
	require.NoError(t, err)

	out, err := execute(t, app, "session", "log", "cpp-basics",
		"--hours", "2.5", "--subtopics", "0,1", "--date", "2025-07-08")
	require.NoError(t, err)
	assert.Contains(t, out, "cpp-basics")
	assert.Contains(t, out, "2.5h")

	out, err = execute(t, app, "session", "list", "--days", "10000")
	require.NoError(t, err)
	assert.Contains(t, out, "cpp-basics")
	assert.Contains(t, out, "2025-07-08")
}

func TestSessionRemoveCmd_Missing(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "session", "rm", "missing-id")
	require.Error(t, err)
}
