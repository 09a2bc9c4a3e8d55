package model

import (
	"time"
)

const (
	// EffectAdjust asks the next generation to work around the disruption;
	// EffectDismiss records it with no planning consequence.
	EffectAdjust  = "Adjust"
	EffectDismiss = "Dismiss"
)

// ValidUnplannedEffect reports whether e is a recognized effect tag.
func ValidUnplannedEffect(e string) bool {
	return e == EffectAdjust || e == EffectDismiss
}

// UnplannedActivity is something the user did (or had to do) outside the
// generated schedule, logged against the goal it disrupted.
type UnplannedActivity struct {
	ID           string    `db:"id"`
	GoalID       string    `db:"goal_id"`
	ActivityDate string    `db:"activity_date"` // YYYY-MM-DD
	ActivityName string    `db:"activity_name"`
	StartTime    string    `db:"start_time"` // HH:MM
	EndTime      string    `db:"end_time"`   // HH:MM
	Reason       string    `db:"reason"`
	Effect       string    `db:"effect"`
	CreatedAt    time.Time `db:"created_at"`
}

// DailyReport is an end-of-day reflection on a goal: the user's own notes
// plus a short model-written recap.
type DailyReport struct {
	ID         string    `db:"id"`
	GoalID     string    `db:"goal_id"`
	ReportDate string    `db:"report_date"` // YYYY-MM-DD
	ModelNotes string    `db:"model_notes"`
	UserNotes  string    `db:"user_notes"`
	CreatedAt  time.Time `db:"created_at"`
}

// GoalReport is the single wrap-up report for a goal. CompletionRate is
// the percentage of scheduled activities marked Completed, 0-100.
type GoalReport struct {
	ID             string    `db:"id"`
	GoalID         string    `db:"goal_id"`
	ReportDate     string    `db:"report_date"` // YYYY-MM-DD
	ModelNotes     string    `db:"model_notes"`
	UserNotes      string    `db:"user_notes"`
	CompletionRate float64   `db:"completion_rate"`
	CreatedAt      time.Time `db:"created_at"`
}
