package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/plannerhq/planner/internal/ai"
	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
)

// ReportService produces daily reflections and the final goal wrap-up.
// Model notes on both report kinds are best-effort: a failed model call
// leaves them empty rather than failing the report.
type ReportService struct {
	goals       repository.GoalRepository
	plans       repository.PlanRepository
	daily       repository.DailyReportRepository
	goalReports repository.GoalReportRepository
	ai          ai.Client
	clock       clock.Clock
}

func NewReportService(
	goals repository.GoalRepository,
	plans repository.PlanRepository,
	daily repository.DailyReportRepository,
	goalReports repository.GoalReportRepository,
	aiClient ai.Client,
	clk clock.Clock,
) *ReportService {
	return &ReportService{
		goals:       goals,
		plans:       plans,
		daily:       daily,
		goalReports: goalReports,
		ai:          aiClient,
		clock:       clk,
	}
}

// CreateDaily records today's reflection for a goal. The model recap is
// written from today's plan when one exists.
func (s *ReportService) CreateDaily(ctx context.Context, userID, goalID, userNotes string) (*model.DailyReport, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := now.Format(model.DateFormat)

	report := &model.DailyReport{
		ID:         uuid.New().String(),
		GoalID:     goal.ID,
		ReportDate: today,
		ModelNotes: s.dailyRecap(ctx, goal, today),
		UserNotes:  userNotes,
		CreatedAt:  now,
	}

	err = s.daily.Create(report)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily report: %w", err)
	}

	return report, nil
}

func (s *ReportService) DailyByGoal(userID, goalID string) ([]*model.DailyReport, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.daily.ByGoal(goal.ID)
}

// UpdateDaily replaces the user's notes; the model recap is immutable.
func (s *ReportService) UpdateDaily(userID, reportID, userNotes string) (*model.DailyReport, error) {
	report, err := s.daily.ByIDForUser(userID, reportID)
	if err != nil {
		return nil, err
	}

	report.UserNotes = userNotes
	err = s.daily.Update(report)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *ReportService) DeleteDaily(userID, reportID string) error {
	return s.daily.Delete(userID, reportID)
}

// UpsertGoalReport creates or refreshes the one wrap-up report per goal:
// recomputes the completion rate, rewrites the model summary, and keeps
// user notes when the caller passes none.
func (s *ReportService) UpsertGoalReport(ctx context.Context, userID, goalID, userNotes string) (*model.GoalReport, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	rate, err := s.completionRate(goal.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := now.Format(model.DateFormat)
	modelNotes := s.goalSummary(ctx, goal, rate)

	existing, err := s.goalReports.ByGoal(goal.ID)
	if err == nil {
		existing.ReportDate = today
		existing.ModelNotes = modelNotes
		existing.CompletionRate = rate
		if userNotes != "" {
			existing.UserNotes = userNotes
		}
		updateErr := s.goalReports.Update(existing)
		if updateErr != nil {
			return nil, updateErr
		}
		return existing, nil
	}
	if !errors.Is(err, repository.ErrGoalReportNotFound) {
		return nil, err
	}

	report := &model.GoalReport{
		ID:             uuid.New().String(),
		GoalID:         goal.ID,
		ReportDate:     today,
		ModelNotes:     modelNotes,
		UserNotes:      userNotes,
		CompletionRate: rate,
		CreatedAt:      now,
	}

	err = s.goalReports.Create(report)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal report: %w", err)
	}

	return report, nil
}

func (s *ReportService) GoalReport(userID, goalID string) (*model.GoalReport, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.goalReports.ByGoal(goal.ID)
}

// completionRate is the percentage of all scheduled activities marked
// Completed. A goal with no scheduled activities rates 0.
func (s *ReportService) completionRate(goalID string) (float64, error) {
	total, err := s.plans.ActivityCount(goalID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	completed, err := s.plans.CompletedActivityCount(goalID)
	if err != nil {
		return 0, err
	}

	return float64(completed) / float64(total) * 100, nil
}

func (s *ReportService) dailyRecap(ctx context.Context, goal *model.Goal, date string) string {
	plan, err := s.plans.ByGoalAndDate(goal.ID, date)
	if err != nil {
		return ""
	}

	activities, err := s.plans.Activities(plan.ID)
	if err != nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a two-sentence end-of-day recap for someone working on the goal %q.\n", goal.Name)
	fmt.Fprintf(&b, "Today's schedule (%s):\n", date)
	for _, a := range activities {
		fmt.Fprintf(&b, "- %s to %s: %s [%s]\n", a.StartTime, a.EndTime, a.ActivityName, a.Status)
	}
	b.WriteString("Respond with only the recap text.")

	reply, err := s.ai.Complete(ctx, b.String())
	if err != nil {
		slog.Warn("daily recap call failed, leaving notes empty", "error", err, "goal_id", goal.ID)
		return ""
	}

	return strings.TrimSpace(reply)
}

func (s *ReportService) goalSummary(ctx context.Context, goal *model.Goal, rate float64) string {
	prompt := fmt.Sprintf(
		"Write a short closing summary for a personal goal.\n"+
			"Goal: %s\nDescription: %s\nPeriod: %s to %s\n"+
			"The user completed %.0f%% of their scheduled activities.\n"+
			"Respond with only the summary text.",
		goal.Name, goal.Description, goal.StartDate, goal.EndDate, rate,
	)

	reply, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("goal summary call failed, leaving notes empty", "error", err, "goal_id", goal.ID)
		return ""
	}

	return strings.TrimSpace(reply)
}
