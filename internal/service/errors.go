package service

import "errors"

var (
	// Goal validation
	ErrGoalNameRequired = errors.New("goal name is required")
	ErrInvalidDates     = errors.New("goal end date must not be before the start date")
	ErrGoalTooLong      = errors.New("goal period cannot exceed 30 days")
	ErrStartDateInPast  = errors.New("goal start date cannot be in the past")

	// Goal lifecycle
	ErrActiveGoalExists   = errors.New("an active goal already exists for this user")
	ErrGoalNotActive      = errors.New("goal is not in Pending or In Progress state")
	ErrPlanDateOutOfRange = errors.New("plan date is outside the goal period")

	// Routines
	ErrRoutineNameRequired  = errors.New("routine activity name is required")
	ErrInvalidRoutineWindow = errors.New("routine start time must be before end time")
	ErrInvalidDayTag        = errors.New("routine day must be a weekday name, Weekday, or Weekend")

	// Unplanned activities
	ErrActivityNameRequired = errors.New("activity name is required")
	ErrInvalidActivityDate  = errors.New("activity date must be a valid YYYY-MM-DD date")
	ErrInvalidEffect        = errors.New("effect must be Adjust or Dismiss")

	// Generative model
	ErrModelUnavailable = errors.New("generative model is unavailable")

	// Plan/activity updates
	ErrInvalidStatus = errors.New("invalid status value")
)
