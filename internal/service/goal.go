package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
)

type GoalService struct {
	repo     repository.GoalRepository
	planRepo repository.PlanRepository
	scorer   *FeasibilityScorer
	clock    clock.Clock
}

func NewGoalService(
	repo repository.GoalRepository,
	planRepo repository.PlanRepository,
	scorer *FeasibilityScorer,
	clk clock.Clock,
) *GoalService {
	return &GoalService{
		repo:     repo,
		planRepo: planRepo,
		scorer:   scorer,
		clock:    clk,
	}
}

// Create validates and persists a new goal. The feasibility score and
// model notes come from the scorer's best-effort model calls; creation
// succeeds even when both fall back.
func (s *GoalService) Create(ctx context.Context, userID, name, description, startDate, endDate string) (*model.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGoalNameRequired
	}

	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}

	if end.Before(start) {
		return nil, ErrInvalidDates
	}
	if int(end.Sub(start).Hours()/24) > model.MaxGoalDays {
		return nil, ErrGoalTooLong
	}

	today := s.clock.Now().Format(model.DateFormat)
	if startDate < today {
		return nil, ErrStartDateInPast
	}

	count, err := s.repo.CountActive(userID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrActiveGoalExists
	}

	now := s.clock.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      model.GoalStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	goal.FeasibilityScore = s.scorer.Score(ctx, goal)
	goal.ModelNotes = s.scorer.Notes(ctx, goal)

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// PlanWithActivities pairs a daily plan with its activities and day number.
type PlanWithActivities struct {
	Plan       *model.DailyPlan
	DayNumber  int
	Activities []*model.PlanActivity
}

// RecentGoal is the user's latest goal with today's plan attached, if one
// exists.
type RecentGoal struct {
	Goal      *model.Goal
	TodayPlan *PlanWithActivities
}

// Recent returns the most recently created goal plus today's plan.
func (s *GoalService) Recent(userID string) (*RecentGoal, error) {
	goal, err := s.repo.Latest(userID)
	if err != nil {
		return nil, err
	}

	out := &RecentGoal{Goal: goal}

	today := s.clock.Now().Format(model.DateFormat)
	plan, err := s.planRepo.ByGoalAndDate(goal.ID, today)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return out, nil
		}
		return nil, err
	}

	activities, err := s.planRepo.Activities(plan.ID)
	if err != nil {
		return nil, err
	}

	out.TodayPlan = &PlanWithActivities{
		Plan:       plan,
		DayNumber:  goal.DayNumber(plan.PlanDate),
		Activities: activities,
	}
	return out, nil
}

// Cancel moves an active goal to Cancelled.
func (s *GoalService) Cancel(userID, goalID string) (*model.Goal, error) {
	return s.transition(userID, goalID, model.GoalStatusCancelled)
}

// Complete moves an active goal to Completed.
func (s *GoalService) Complete(userID, goalID string) (*model.Goal, error) {
	return s.transition(userID, goalID, model.GoalStatusCompleted)
}

func (s *GoalService) transition(userID, goalID, status string) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if !goal.Active() {
		return nil, ErrGoalNotActive
	}

	goal.Status = status
	goal.UpdatedAt = s.clock.Now()
	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes a goal; plans and activities cascade at the database.
func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}
