// Package schedule turns an untrusted block of model output into a
// validated list of candidate activities. Individual invalid or
// conflicting activities are dropped rather than failing the whole
// parse; only a response with no usable JSON, or one where nothing
// survives validation, is an error.
package schedule

import (
	"encoding/json"
	"errors"

	"github.com/plannerhq/planner/internal/model"
)

var (
	// ErrMalformedResponse means no parseable JSON object was found in
	// the model's reply.
	ErrMalformedResponse = errors.New("model response contains no parseable schedule")
	// ErrEmptySchedule means the reply parsed but no activity survived
	// validation.
	ErrEmptySchedule = errors.New("no valid activities in model response")
)

// BusyWindow is a time interval during which the user is unavailable.
type BusyWindow struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// Candidate is one validated activity extracted from the model output.
type Candidate struct {
	Name      string
	StartTime string
	EndTime   string
	Notes     string
}

// Result is the validated schedule: surviving activities in the order the
// model produced them, plus the model's notes (empty if omitted).
type Result struct {
	Activities []Candidate
	Notes      string
}

type rawActivity struct {
	ActivityName string `json:"activity_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Notes        string `json:"notes"`
}

type rawPayload struct {
	Notes      string        `json:"notes"`
	Activities []rawActivity `json:"activities"`
}

// Parse extracts the first JSON object from raw and validates each
// activity in it. nowMinutes is the current minute of day; activities
// starting at or before it are dropped (plans are only ever generated
// for the current date). Pass a negative nowMinutes to disable the
// past-start check.
func Parse(raw string, busy []BusyWindow, nowMinutes int) (*Result, error) {
	span, ok := extractObject(raw)
	if !ok {
		return nil, ErrMalformedResponse
	}

	var payload rawPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, ErrMalformedResponse
	}

	windows := make([]interval, 0, len(busy))
	for _, w := range busy {
		start, err := model.MinuteOfDay(w.StartTime)
		if err != nil {
			continue
		}
		end, err := model.MinuteOfDay(w.EndTime)
		if err != nil {
			continue
		}
		windows = append(windows, interval{start: start, end: end})
	}

	out := &Result{Notes: payload.Notes}
	for _, a := range payload.Activities {
		if a.ActivityName == "" {
			continue
		}
		start, err := model.MinuteOfDay(a.StartTime)
		if err != nil {
			continue
		}
		end, err := model.MinuteOfDay(a.EndTime)
		if err != nil {
			continue
		}
		if start >= end {
			continue
		}
		if nowMinutes >= 0 && start <= nowMinutes {
			continue
		}
		if overlapsAny(windows, interval{start: start, end: end}) {
			continue
		}
		out.Activities = append(out.Activities, Candidate{
			Name:      a.ActivityName,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			Notes:     a.Notes,
		})
	}

	if len(out.Activities) == 0 {
		return nil, ErrEmptySchedule
	}
	return out, nil
}

type interval struct {
	start, end int
}

// overlapsAny uses the half-open overlap test: two intervals conflict when
// start < busyEnd and end > busyStart.
func overlapsAny(windows []interval, v interval) bool {
	for _, w := range windows {
		if v.start < w.end && v.end > w.start {
			return true
		}
	}
	return false
}

// extractObject scans raw for the first top-level {...} span, tracking
// string literals and escapes so braces inside values don't miscount.
// Single pass over the input; an unbalanced object yields no match and
// the caller reports the response as malformed.
func extractObject(raw string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	return "", false
}
