package model

import (
	"time"
)

const (
	GoalStatusPending    = "Pending"
	GoalStatusInProgress = "In Progress"
	GoalStatusCompleted  = "Completed"
	GoalStatusExpired    = "Expired"
	GoalStatusCancelled  = "Cancelled"
)

// MaxGoalDays is the longest allowed goal period (end - start), end date inclusive.
const MaxGoalDays = 30

type Goal struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	Name             string    `db:"name"`
	Description      string    `db:"description"`
	StartDate        string    `db:"start_date"` // YYYY-MM-DD
	EndDate          string    `db:"end_date"`   // YYYY-MM-DD, inclusive
	Status           string    `db:"status"`
	FeasibilityScore int       `db:"feasibility_score"`
	ModelNotes       string    `db:"model_notes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Active reports whether the goal still accepts daily plans.
func (g *Goal) Active() bool {
	return g.Status == GoalStatusPending || g.Status == GoalStatusInProgress
}

// DurationDays returns the number of days between start and end, or -1 if
// either date is malformed.
func (g *Goal) DurationDays() int {
	start, err := ParseDate(g.StartDate)
	if err != nil {
		return -1
	}
	end, err := ParseDate(g.EndDate)
	if err != nil {
		return -1
	}
	return int(end.Sub(start).Hours() / 24)
}

// ContainsDate reports whether a YYYY-MM-DD date falls within the goal
// period. ISO dates compare correctly as strings.
func (g *Goal) ContainsDate(date string) bool {
	return date >= g.StartDate && date <= g.EndDate
}

// DayNumber returns the 1-based day of the goal period for a plan date,
// or 0 if the date is outside [start, end].
func (g *Goal) DayNumber(planDate string) int {
	start, err := ParseDate(g.StartDate)
	if err != nil {
		return 0
	}
	plan, err := ParseDate(planDate)
	if err != nil {
		return 0
	}
	n := int(plan.Sub(start).Hours()/24) + 1
	if n < 1 || n > g.DurationDays()+1 {
		return 0
	}
	return n
}
