package service_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/enrich"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/alexanderramin/studyplan/internal/testutil"
)

// testEnv bundles every collaborator a service test needs, all backed
// by one in-memory database.
type testEnv struct {
	db       *sql.DB
	curr     *curriculum.Curriculum
	plans    *repository.SQLitePlanRepo
	consts   *repository.SQLiteConstraintRepo
	progRepo *repository.SQLiteProgressRepo
	sessions *repository.SQLiteSessionRepo

	plan     service.PlanService
	progress service.ProgressService
	status   service.StatusService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	curr, err := curriculum.Load()
	require.NoError(t, err)

	env := &testEnv{
		db:       database,
		curr:     curr,
		plans:    repository.NewSQLitePlanRepo(database),
		consts:   repository.NewSQLiteConstraintRepo(database),
		progRepo: repository.NewSQLiteProgressRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
	}
	env.plan = service.NewPlanService(env.plans, env.consts, nil)
	env.progress = service.NewProgressService(curr, env.progRepo, env.sessions, testutil.NewTestUoW(database), nil)
	env.status = service.NewStatusService(curr, env.plans, env.consts, env.progRepo)
	return env
}

func (e *testEnv) planner(t *testing.T, advisor enrich.Advisor) service.PlannerService {
	t.Helper()
	return service.NewPlannerService(e.curr, e.plans, e.consts, e.progRepo, advisor, nil)
}
