package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
	"github.com/plannerhq/planner/internal/schedule"
)

type RoutineService struct {
	repo  repository.RoutineRepository
	clock clock.Clock
}

func NewRoutineService(repo repository.RoutineRepository, clk clock.Clock) *RoutineService {
	return &RoutineService{repo: repo, clock: clk}
}

func (s *RoutineService) Create(userID, name, startTime, endTime, day string) (*model.RecurringRoutine, error) {
	err := validateRoutine(name, startTime, endTime, day)
	if err != nil {
		return nil, err
	}

	routine := &model.RecurringRoutine{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityName: strings.TrimSpace(name),
		StartTime:    startTime,
		EndTime:      endTime,
		DayOfWeek:    day,
		CreatedAt:    s.clock.Now(),
	}

	err = s.repo.Create(routine)
	if err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}

	return routine, nil
}

func (s *RoutineService) Routines(userID string) ([]*model.RecurringRoutine, error) {
	return s.repo.Routines(userID)
}

func (s *RoutineService) Update(userID, routineID, name, startTime, endTime, day string) (*model.RecurringRoutine, error) {
	err := validateRoutine(name, startTime, endTime, day)
	if err != nil {
		return nil, err
	}

	routine, err := s.repo.ByID(userID, routineID)
	if err != nil {
		return nil, err
	}

	routine.ActivityName = strings.TrimSpace(name)
	routine.StartTime = startTime
	routine.EndTime = endTime
	routine.DayOfWeek = day

	err = s.repo.Update(routine)
	if err != nil {
		return nil, err
	}

	return routine, nil
}

func (s *RoutineService) Delete(userID, routineID string) error {
	return s.repo.Delete(userID, routineID)
}

// BusyWindows returns the busy intervals for a user on a date: routines
// tagged with the exact weekday name or the date's Weekday/Weekend
// category, ordered by start time.
func (s *RoutineService) BusyWindows(userID string, date time.Time) ([]schedule.BusyWindow, error) {
	weekday := date.Weekday().String()
	category := model.DayCategory(date)

	routines, err := s.repo.ForDay(userID, weekday, category)
	if err != nil {
		return nil, err
	}

	windows := make([]schedule.BusyWindow, 0, len(routines))
	for _, r := range routines {
		windows = append(windows, schedule.BusyWindow{
			Name:      r.ActivityName,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	return windows, nil
}

func validateRoutine(name, startTime, endTime, day string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRoutineNameRequired
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

	if !model.ValidRoutineDay(day) {
		return ErrInvalidDayTag
	}

	return nil
}
