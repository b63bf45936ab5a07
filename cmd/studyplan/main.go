package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/enrich"
	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.studyplan/studyplan.db
	dbPath := os.Getenv("STUDYPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studyplan", "studyplan.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// STUDYPLAN_ROADMAP points at a YAML roadmap override; otherwise
	// the built-in curriculum is used.
	var curr *curriculum.Curriculum
	if roadmap := os.Getenv("STUDYPLAN_ROADMAP"); roadmap != "" {
		curr, err = curriculum.LoadFile(roadmap)
	} else {
		curr, err = curriculum.Load()
	}
	if err != nil {
		return fmt.Errorf("loading curriculum: %w", err)
	}

	// Wire repositories
	planRepo := repository.NewSQLitePlanRepo(database)
	constraintRepo := repository.NewSQLiteConstraintRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var useCaseObserver service.UseCaseObserver
	if os.Getenv("STUDYPLAN_DEBUG") != "" {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire the enrichment advisor only when the LLM is enabled.
	var advisor enrich.Advisor
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		advisor = enrich.NewAdvisor(llm.NewChatClient(llmCfg, observer))
	}

	app := &cli.App{
		Plan:     service.NewPlanService(planRepo, constraintRepo, useCaseObserver),
		Progress: service.NewProgressService(curr, progressRepo, sessionRepo, uow, useCaseObserver),
		Planner:  service.NewPlannerService(curr, planRepo, constraintRepo, progressRepo, advisor, useCaseObserver),
		Status:   service.NewStatusService(curr, planRepo, constraintRepo, progressRepo),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
