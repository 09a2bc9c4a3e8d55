// Package clock abstracts wall-clock reads so date and time-of-day rules
// can be tested with fixed instants.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System returns a clock reading the wall clock in the given timezone.
// An unknown timezone falls back to UTC.
func System(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type fixedClock struct {
	t time.Time
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock {
	return &fixedClock{t: t}
}

func (c *fixedClock) Now() time.Time {
	return c.t
}
