package routes

import (
	"net/http"

	"github.com/plannerhq/planner/internal/app"
	"github.com/plannerhq/planner/internal/handler"
	"github.com/plannerhq/planner/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(a.AuthService)
	goal := handler.NewGoalHandler(a.GoalService)
	routine := handler.NewRoutineHandler(a.RoutineService)
	plan := handler.NewPlanHandler(a.PlannerService)
	unplanned := handler.NewUnplannedHandler(a.UnplannedService)
	report := handler.NewReportHandler(a.ReportService)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", auth.Register)
	mux.HandleFunc("POST /api/auth/login", auth.Login)

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/recent", middleware.RequireAuth(goal.Recent))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("POST /api/goals/{id}/cancel", middleware.RequireAuth(goal.Cancel))
	mux.HandleFunc("POST /api/goals/{id}/complete", middleware.RequireAuth(goal.Complete))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Daily plans
	mux.HandleFunc("GET /api/goals/{id}/plans", middleware.RequireAuth(plan.ListByGoal))
	mux.HandleFunc("POST /api/goals/{id}/plans/generate", middleware.RequireAuth(plan.Generate))
	mux.HandleFunc("PATCH /api/plans/{id}", middleware.RequireAuth(plan.UpdatePlan))
	mux.HandleFunc("PATCH /api/activities/{id}", middleware.RequireAuth(plan.UpdateActivity))

	// Unplanned activities
	mux.HandleFunc("GET /api/goals/{id}/unplanned-activities", middleware.RequireAuth(unplanned.ListByGoal))
	mux.HandleFunc("POST /api/goals/{id}/unplanned-activities", middleware.RequireAuth(unplanned.Create))
	mux.HandleFunc("PUT /api/unplanned-activities/{id}", middleware.RequireAuth(unplanned.Update))
	mux.HandleFunc("DELETE /api/unplanned-activities/{id}", middleware.RequireAuth(unplanned.Delete))

	// Reports
	mux.HandleFunc("GET /api/goals/{id}/reports", middleware.RequireAuth(report.ListDailyByGoal))
	mux.HandleFunc("POST /api/goals/{id}/reports", middleware.RequireAuth(report.CreateDaily))
	mux.HandleFunc("PATCH /api/reports/{id}", middleware.RequireAuth(report.UpdateDaily))
	mux.HandleFunc("DELETE /api/reports/{id}", middleware.RequireAuth(report.DeleteDaily))
	mux.HandleFunc("GET /api/goals/{id}/report", middleware.RequireAuth(report.GetGoalReport))
	mux.HandleFunc("POST /api/goals/{id}/report", middleware.RequireAuth(report.UpsertGoalReport))

	// Routines
	mux.HandleFunc("GET /api/routines", middleware.RequireAuth(routine.List))
	mux.HandleFunc("POST /api/routines", middleware.RequireAuth(routine.Create))
	mux.HandleFunc("PUT /api/routines/{id}", middleware.RequireAuth(routine.Update))
	mux.HandleFunc("DELETE /api/routines/{id}", middleware.RequireAuth(routine.Delete))

	// Global middleware
	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(a.AuthService, a.UserService),
	)
}
