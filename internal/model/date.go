package model

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the wire and storage format for calendar dates.
	DateFormat = "2006-01-02"
	// TimeFormat is the wire and storage format for times of day.
	TimeFormat = "15:04"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// MinuteOfDay converts an HH:MM time of day to minutes since midnight.
func MinuteOfDay(s string) (int, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
