package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plannerhq/planner/internal/ai"
	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
	"github.com/plannerhq/planner/internal/schedule"
)

const fallbackPlanNotes = "Keep pushing forward - you're closer to success than you think!"

// PlannerService generates and manages daily plans. Each generation
// request is independent: the model is called at most once, the result is
// parsed and validated, and the plan plus its activities commit in a
// single transaction guarded by the (goal, plan date) uniqueness
// constraint.
type PlannerService struct {
	goals     repository.GoalRepository
	plans     repository.PlanRepository
	routines  *RoutineService
	unplanned repository.UnplannedActivityRepository
	ai        ai.Client
	clock     clock.Clock
}

func NewPlannerService(
	goals repository.GoalRepository,
	plans repository.PlanRepository,
	routines *RoutineService,
	unplanned repository.UnplannedActivityRepository,
	aiClient ai.Client,
	clk clock.Clock,
) *PlannerService {
	return &PlannerService{
		goals:     goals,
		plans:     plans,
		routines:  routines,
		unplanned: unplanned,
		ai:        aiClient,
		clock:     clk,
	}
}

// GenerateResult reports the outcome of a generation request. Created is
// false when a plan for today already existed; the existing plan is
// returned unchanged.
type GenerateResult struct {
	Created    bool
	Plan       *model.DailyPlan
	DayNumber  int
	Activities []*model.PlanActivity
}

// GenerateTodayPlan produces today's plan for a goal. It is idempotent
// per (goal, day): a second call returns the existing plan. A failed
// model call is terminal for the request and persists nothing; the caller
// may re-invoke.
func (s *PlannerService) GenerateTodayPlan(ctx context.Context, userID, goalID string) (*GenerateResult, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := now.Format(model.DateFormat)

	existing, err := s.plans.ByGoalAndDate(goal.ID, today)
	if err == nil {
		return s.existingResult(goal, existing)
	}
	if !errors.Is(err, repository.ErrPlanNotFound) {
		return nil, err
	}

	if !goal.Active() {
		return nil, ErrGoalNotActive
	}
	if !goal.ContainsDate(today) || goal.DayNumber(today) == 0 {
		return nil, ErrPlanDateOutOfRange
	}

	busy, err := s.routines.BusyWindows(userID, now)
	if err != nil {
		return nil, err
	}

	summary, err := s.progressSummary(goal, today)
	if err != nil {
		return nil, err
	}

	prompt := renderPlanPrompt(goal, summary, busy, today, now)

	raw, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		slog.Error("plan generation model call failed", "error", err, "goal_id", goal.ID)
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	parsed, err := schedule.Parse(raw, busy, nowMinutes)
	if err != nil {
		slog.Warn("plan generation produced no usable schedule", "error", err, "goal_id", goal.ID)
		return nil, err
	}

	notes := strings.TrimSpace(parsed.Notes)
	if notes == "" {
		notes = fallbackPlanNotes
	}

	createdAt := now
	plan := &model.DailyPlan{
		ID:        uuid.New().String(),
		GoalID:    goal.ID,
		PlanDate:  today,
		Status:    model.PlanStatusPending,
		Notes:     notes,
		CreatedAt: createdAt,
	}

	activities := make([]*model.PlanActivity, 0, len(parsed.Activities))
	for _, c := range parsed.Activities {
		activities = append(activities, &model.PlanActivity{
			ID:           uuid.New().String(),
			PlanID:       plan.ID,
			ActivityName: c.Name,
			StartTime:    c.StartTime,
			EndTime:      c.EndTime,
			Status:       model.ActivityStatusPending,
			Notes:        c.Notes,
			CreatedAt:    createdAt,
		})
	}

	promote := goal.Status == model.GoalStatusPending
	err = s.plans.CreateWithActivities(plan, activities, promote)
	if err != nil {
		if errors.Is(err, repository.ErrPlanExists) {
			// Lost the insert race to a concurrent request for the same
			// day; report the winner's plan.
			winner, lookupErr := s.plans.ByGoalAndDate(goal.ID, today)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return s.existingResult(goal, winner)
		}
		return nil, err
	}

	slog.Info("daily plan generated",
		"goal_id", goal.ID,
		"plan_id", plan.ID,
		"plan_date", today,
		"activities", len(activities),
	)

	return &GenerateResult{
		Created:    true,
		Plan:       plan,
		DayNumber:  goal.DayNumber(today),
		Activities: activities,
	}, nil
}

func (s *PlannerService) existingResult(goal *model.Goal, plan *model.DailyPlan) (*GenerateResult, error) {
	activities, err := s.plans.Activities(plan.ID)
	if err != nil {
		return nil, err
	}
	return &GenerateResult{
		Created:    false,
		Plan:       plan,
		DayNumber:  goal.DayNumber(plan.PlanDate),
		Activities: activities,
	}, nil
}

// PlansForGoal returns all of a goal's plans with activities and day
// numbers, ownership-checked.
func (s *PlannerService) PlansForGoal(userID, goalID string) ([]*PlanWithActivities, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	plans, err := s.plans.Plans(goal.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*PlanWithActivities, 0, len(plans))
	for _, p := range plans {
		activities, err := s.plans.Activities(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &PlanWithActivities{
			Plan:       p,
			DayNumber:  goal.DayNumber(p.PlanDate),
			Activities: activities,
		})
	}

	return out, nil
}

// UpdatePlan changes a plan's status and notes.
func (s *PlannerService) UpdatePlan(userID, planID, status, notes string) (*model.DailyPlan, error) {
	if !model.ValidPlanStatus(status) {
		return nil, ErrInvalidStatus
	}

	plan, err := s.plans.ByIDForUser(userID, planID)
	if err != nil {
		return nil, err
	}

	plan.Status = status
	if notes != "" {
		plan.Notes = notes
	}

	err = s.plans.UpdatePlan(plan)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// UpdateActivityStatus marks an activity Pending, Completed, or Skipped.
func (s *PlannerService) UpdateActivityStatus(userID, activityID, status string) (*model.PlanActivity, error) {
	if !model.ValidActivityStatus(status) {
		return nil, ErrInvalidStatus
	}

	activity, err := s.plans.ActivityByIDForUser(userID, activityID)
	if err != nil {
		return nil, err
	}

	err = s.plans.UpdateActivityStatus(activity.ID, status)
	if err != nil {
		return nil, err
	}

	activity.Status = status
	return activity, nil
}

// progressSummary is the read-side projection fed to the model: how many
// activities the user has completed so far, and every prior day's plan
// with its activities.
type progressSummary struct {
	CompletedActivities int                 `json:"completed_activities"`
	PriorPlans          []planHistory       `json:"prior_plans"`
	Disruptions         []disruptionHistory `json:"disruptions,omitempty"`
}

// disruptionHistory is a logged unplanned activity the user asked the
// planner to adjust around.
type disruptionHistory struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason,omitempty"`
}

type planHistory struct {
	PlanDate   string            `json:"plan_date"`
	Status     string            `json:"status"`
	Activities []activityHistory `json:"activities"`
}

type activityHistory struct {
	Name   string `json:"name"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

func (s *PlannerService) progressSummary(goal *model.Goal, today string) (*progressSummary, error) {
	completed, err := s.plans.CompletedActivityCount(goal.ID)
	if err != nil {
		return nil, err
	}

	prior, err := s.plans.PlansBefore(goal.ID, today)
	if err != nil {
		return nil, err
	}

	summary := &progressSummary{CompletedActivities: completed}
	for _, p := range prior {
		activities, err := s.plans.Activities(p.ID)
		if err != nil {
			return nil, err
		}

		h := planHistory{PlanDate: p.PlanDate, Status: p.Status}
		for _, a := range activities {
			h.Activities = append(h.Activities, activityHistory{
				Name:   a.ActivityName,
				Start:  a.StartTime,
				End:    a.EndTime,
				Status: a.Status,
			})
		}
		summary.PriorPlans = append(summary.PriorPlans, h)
	}

	unplanned, err := s.unplanned.ByGoal(goal.ID)
	if err != nil {
		return nil, err
	}
	for _, u := range unplanned {
		if u.Effect != model.EffectAdjust {
			continue
		}
		summary.Disruptions = append(summary.Disruptions, disruptionHistory{
			Date:   u.ActivityDate,
			Name:   u.ActivityName,
			Start:  u.StartTime,
			End:    u.EndTime,
			Reason: u.Reason,
		})
	}

	return summary, nil
}

func renderPlanPrompt(goal *model.Goal, summary *progressSummary, busy []schedule.BusyWindow, today string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a personal planning assistant. Create today's schedule for the goal below.\n\n")
	fmt.Fprintf(&b, "Goal: %s\n", goal.Name)
	fmt.Fprintf(&b, "Description: %s\n", goal.Description)
	fmt.Fprintf(&b, "Goal period: %s to %s (day %d of %d)\n", goal.StartDate, goal.EndDate, goal.DayNumber(today), goal.DurationDays()+1)
	fmt.Fprintf(&b, "Today is %s, current time %s.\n", today, now.Format(model.TimeFormat))
	fmt.Fprintf(&b, "Activities completed so far: %d\n\n", summary.CompletedActivities)

	if len(busy) > 0 {
		b.WriteString("The user is BUSY during these windows today; do not schedule anything that overlaps them:\n")
		for _, w := range busy {
			fmt.Fprintf(&b, "- %s to %s: %s\n", w.StartTime, w.EndTime, w.Name)
		}
		b.WriteString("\n")
	}

	if len(summary.PriorPlans) > 0 {
		history, err := json.Marshal(summary.PriorPlans)
		if err == nil {
			fmt.Fprintf(&b, "Previous days for context:\n%s\n\n", history)
		}
	}

	if len(summary.Disruptions) > 0 {
		disruptions, err := json.Marshal(summary.Disruptions)
		if err == nil {
			fmt.Fprintf(&b, "Unplanned disruptions the user wants the schedule adjusted around:\n%s\n\n", disruptions)
		}
	}

	fmt.Fprintf(&b, "Schedule at least 5 activities for today, all after %s and none overlapping a busy window.\n", now.Format(model.TimeFormat))
	b.WriteString("Respond with ONLY a JSON object in this exact shape, no other text:\n")
	b.WriteString(`{"notes": "a short encouraging note for the day", "activities": [{"activity_name": "...", "start_time": "HH:MM", "end_time": "HH:MM", "notes": "..."}]}`)
	b.WriteString("\nUse 24-hour HH:MM times.")

	return b.String()
}
