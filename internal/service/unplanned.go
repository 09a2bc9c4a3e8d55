package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
)

// UnplannedActivityService logs off-schedule activities against a goal.
// Entries are a record of what actually happened; an Adjust effect feeds
// the disruption back into future generation context, Dismiss does not.
type UnplannedActivityService struct {
	goals     repository.GoalRepository
	unplanned repository.UnplannedActivityRepository
	clock     clock.Clock
}

func NewUnplannedActivityService(
	goals repository.GoalRepository,
	unplanned repository.UnplannedActivityRepository,
	clk clock.Clock,
) *UnplannedActivityService {
	return &UnplannedActivityService{
		goals:     goals,
		unplanned: unplanned,
		clock:     clk,
	}
}

func (s *UnplannedActivityService) Create(userID, goalID, date, name, startTime, endTime, reason, effect string) (*model.UnplannedActivity, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = validateUnplanned(date, name, startTime, endTime, effect)
	if err != nil {
		return nil, err
	}

	activity := &model.UnplannedActivity{
		ID:           uuid.New().String(),
		GoalID:       goal.ID,
		ActivityDate: date,
		ActivityName: strings.TrimSpace(name),
		StartTime:    startTime,
		EndTime:      endTime,
		Reason:       reason,
		Effect:       effect,
		CreatedAt:    s.clock.Now(),
	}

	err = s.unplanned.Create(activity)
	if err != nil {
		return nil, fmt.Errorf("failed to create unplanned activity: %w", err)
	}

	return activity, nil
}

func (s *UnplannedActivityService) ByGoal(userID, goalID string) ([]*model.UnplannedActivity, error) {
	goal, err := s.goals.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.unplanned.ByGoal(goal.ID)
}

func (s *UnplannedActivityService) Update(userID, activityID, date, name, startTime, endTime, reason, effect string) (*model.UnplannedActivity, error) {
	err := validateUnplanned(date, name, startTime, endTime, effect)
	if err != nil {
		return nil, err
	}

	activity, err := s.unplanned.ByIDForUser(userID, activityID)
	if err != nil {
		return nil, err
	}

	activity.ActivityDate = date
	activity.ActivityName = strings.TrimSpace(name)
	activity.StartTime = startTime
	activity.EndTime = endTime
	activity.Reason = reason
	activity.Effect = effect

	err = s.unplanned.Update(activity)
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *UnplannedActivityService) Delete(userID, activityID string) error {
	return s.unplanned.Delete(userID, activityID)
}

func validateUnplanned(date, name, startTime, endTime, effect string) error {
	if strings.TrimSpace(name) == "" {
		return ErrActivityNameRequired
	}

	_, err := model.ParseDate(date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidActivityDate, err)
	}

	start, err := model.MinuteOfDay(startTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoutineWindow, err)
	}
	end, err := model.MinuteOfDay(endTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoutineWindow, err)
	}
	if start >= end {
		return ErrInvalidRoutineWindow
	}

	if !model.ValidUnplannedEffect(effect) {
		return ErrInvalidEffect
	}

	return nil
}
