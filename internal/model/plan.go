package model

import (
	"time"
)

const (
	PlanStatusPending    = "Pending"
	PlanStatusInProgress = "In Progress"
	PlanStatusCompleted  = "Completed"
	PlanStatusSkipped    = "Skipped"
)

const (
	ActivityStatusPending   = "Pending"
	ActivityStatusCompleted = "Completed"
	ActivityStatusSkipped   = "Skipped"
)

// ValidPlanStatus reports whether s is a recognized daily plan status.
func ValidPlanStatus(s string) bool {
	switch s {
	case PlanStatusPending, PlanStatusInProgress, PlanStatusCompleted, PlanStatusSkipped:
		return true
	}
	return false
}

// ValidActivityStatus reports whether s is a recognized activity status.
func ValidActivityStatus(s string) bool {
	switch s {
	case ActivityStatusPending, ActivityStatusCompleted, ActivityStatusSkipped:
		return true
	}
	return false
}

// DailyPlan is one day's schedule for a goal. At most one plan exists per
// (goal, plan date); the database enforces the uniqueness.
type DailyPlan struct {
	ID        string    `db:"id"`
	GoalID    string    `db:"goal_id"`
	PlanDate  string    `db:"plan_date"` // YYYY-MM-DD
	Status    string    `db:"status"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

// PlanActivity is a single scheduled item within a daily plan.
type PlanActivity struct {
	ID           string    `db:"id"`
	PlanID       string    `db:"plan_id"`
	ActivityName string    `db:"activity_name"`
	StartTime    string    `db:"start_time"` // HH:MM
	EndTime      string    `db:"end_time"`   // HH:MM
	Status       string    `db:"status"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}
