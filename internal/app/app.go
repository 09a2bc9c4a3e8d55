package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/plannerhq/planner/internal/ai"
	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/config"
	"github.com/plannerhq/planner/internal/db"
	"github.com/plannerhq/planner/internal/repository"
	"github.com/plannerhq/planner/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	UserService      *service.UserService
	GoalService      *service.GoalService
	RoutineService   *service.RoutineService
	PlannerService   *service.PlannerService
	UnplannedService *service.UnplannedActivityService
	ReportService    *service.ReportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	routineRepository := repository.NewRoutineRepository(database)
	planRepository := repository.NewPlanRepository(database)
	unplannedRepository := repository.NewUnplannedActivityRepository(database)
	dailyReportRepository := repository.NewDailyReportRepository(database)
	goalReportRepository := repository.NewGoalReportRepository(database)

	// Generative model client
	aiClient := ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	clk := clock.System(cfg.Timezone)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)
	scorer := service.NewFeasibilityScorer(aiClient)
	goalService := service.NewGoalService(goalRepository, planRepository, scorer, clk)
	routineService := service.NewRoutineService(routineRepository, clk)
	plannerService := service.NewPlannerService(goalRepository, planRepository, routineService, unplannedRepository, aiClient, clk)
	unplannedService := service.NewUnplannedActivityService(goalRepository, unplannedRepository, clk)
	reportService := service.NewReportService(goalRepository, planRepository, dailyReportRepository, goalReportRepository, aiClient, clk)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		UserService:      userService,
		GoalService:      goalService,
		RoutineService:   routineService,
		PlannerService:   plannerService,
		UnplannedService: unplannedService,
		ReportService:    reportService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
