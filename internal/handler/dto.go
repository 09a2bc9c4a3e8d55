package handler

import (
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/service"
)

type goalResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
	FeasibilityScore int    `json:"feasibility_score"`
	ModelNotes       string `json:"model_notes"`
}

func toGoalResponse(g *model.Goal) goalResponse {
	return goalResponse{
		ID:               g.ID,
		Name:             g.Name,
		Description:      g.Description,
		StartDate:        g.StartDate,
		EndDate:          g.EndDate,
		Status:           g.Status,
		FeasibilityScore: g.FeasibilityScore,
		ModelNotes:       g.ModelNotes,
	}
}

type routineResponse struct {
	ID           string `json:"id"`
	ActivityName string `json:"activity_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	DayOfWeek    string `json:"day_of_week"`
}

func toRoutineResponse(r *model.RecurringRoutine) routineResponse {
	return routineResponse{
		ID:           r.ID,
		ActivityName: r.ActivityName,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		DayOfWeek:    r.DayOfWeek,
	}
}

type activityResponse struct {
	ID           string `json:"id"`
	ActivityName string `json:"activity_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

func toActivityResponse(a *model.PlanActivity) activityResponse {
	return activityResponse{
		ID:           a.ID,
		ActivityName: a.ActivityName,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Status:       a.Status,
		Notes:        a.Notes,
	}
}

type planResponse struct {
	ID         string             `json:"id"`
	GoalID     string             `json:"goal_id"`
	PlanDate   string             `json:"plan_date"`
	DayNumber  int                `json:"day_number,omitempty"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes"`
	Activities []activityResponse `json:"activities"`
}

func toPlanResponse(p *model.DailyPlan, dayNumber int, activities []*model.PlanActivity) planResponse {
	out := planResponse{
		ID:         p.ID,
		GoalID:     p.GoalID,
		PlanDate:   p.PlanDate,
		DayNumber:  dayNumber,
		Status:     p.Status,
		Notes:      p.Notes,
		Activities: make([]activityResponse, 0, len(activities)),
	}
	for _, a := range activities {
		out.Activities = append(out.Activities, toActivityResponse(a))
	}
	return out
}

func toPlanWithActivitiesResponse(p *service.PlanWithActivities) planResponse {
	return toPlanResponse(p.Plan, p.DayNumber, p.Activities)
}

type unplannedResponse struct {
	ID           string `json:"id"`
	GoalID       string `json:"goal_id"`
	ActivityDate string `json:"activity_date"`
	ActivityName string `json:"activity_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Reason       string `json:"reason"`
	Effect       string `json:"effect"`
}

func toUnplannedResponse(a *model.UnplannedActivity) unplannedResponse {
	return unplannedResponse{
		ID:           a.ID,
		GoalID:       a.GoalID,
		ActivityDate: a.ActivityDate,
		ActivityName: a.ActivityName,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Reason:       a.Reason,
		Effect:       a.Effect,
	}
}

type dailyReportResponse struct {
	ID         string `json:"id"`
	GoalID     string `json:"goal_id"`
	ReportDate string `json:"report_date"`
	ModelNotes string `json:"model_notes"`
	UserNotes  string `json:"user_notes"`
}

func toDailyReportResponse(r *model.DailyReport) dailyReportResponse {
	return dailyReportResponse{
		ID:         r.ID,
		GoalID:     r.GoalID,
		ReportDate: r.ReportDate,
		ModelNotes: r.ModelNotes,
		UserNotes:  r.UserNotes,
	}
}

type goalReportResponse struct {
	ID             string  `json:"id"`
	GoalID         string  `json:"goal_id"`
	ReportDate     string  `json:"report_date"`
	ModelNotes     string  `json:"model_notes"`
	UserNotes      string  `json:"user_notes"`
	CompletionRate float64 `json:"completion_rate"`
}

func toGoalReportResponse(r *model.GoalReport) goalReportResponse {
	return goalReportResponse{
		ID:             r.ID,
		GoalID:         r.GoalID,
		ReportDate:     r.ReportDate,
		ModelNotes:     r.ModelNotes,
		UserNotes:      r.UserNotes,
		CompletionRate: r.CompletionRate,
	}
}
