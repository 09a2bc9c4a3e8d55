package model

import (
	"time"
)

const (
	DayWeekday = "Weekday"
	DayWeekend = "Weekend"
)

// RoutineDays lists the valid day-applicability tags for a routine:
// an exact weekday name or a Weekday/Weekend category.
var RoutineDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday", "Sunday",
	DayWeekday, DayWeekend,
}

// ValidRoutineDay reports whether day is a recognized day tag.
func ValidRoutineDay(day string) bool {
	for _, d := range RoutineDays {
		if d == day {
			return true
		}
	}
	return false
}

// DayCategory returns Weekday or Weekend for a calendar date.
func DayCategory(date time.Time) string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayWeekend
	default:
		return DayWeekday
	}
}

// RecurringRoutine is a standing weekly commitment. It is independent of
// any goal and is only consulted to detect scheduling conflicts.
type RecurringRoutine struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	ActivityName string    `db:"activity_name"`
	StartTime    string    `db:"start_time"` // HH:MM
	EndTime      string    `db:"end_time"`   // HH:MM, same day, after start
	DayOfWeek    string    `db:"day_of_week"`
	CreatedAt    time.Time `db:"created_at"`
}
