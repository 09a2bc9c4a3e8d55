package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/plannerhq/planner/internal/ai"
	"github.com/plannerhq/planner/internal/model"
)

const (
	defaultFeasibilityScore = 5
	modelNotesLimit         = 100

	fallbackModelNotes = "Keep going! Your goal is a beautiful journey of growth and discovery. " +
		"Every small step forward is a victory worth celebrating."
)

// FeasibilityScorer asks the model to rate a new goal and write a short
// motivational note. Both calls are best-effort: any failure maps to a
// fixed fallback so goal creation never depends on the model being up.
type FeasibilityScorer struct {
	ai ai.Client
}

func NewFeasibilityScorer(aiClient ai.Client) *FeasibilityScorer {
	return &FeasibilityScorer{ai: aiClient}
}

// Score returns a 1-10 feasibility rating, falling back to 5 on any
// model failure or an unusable reply.
func (s *FeasibilityScorer) Score(ctx context.Context, goal *model.Goal) int {
	prompt := fmt.Sprintf(
		"Please analyze the following goal for feasibility:\n"+
			"Goal Name: %s\n"+
			"Goal Description: %s\n"+
			"Timeframe: %d days\n"+
			"On a scale of 1 to 10 (1 being least feasible, 10 being most feasible), rate its feasibility.\n"+
			"Respond with only a single number between 1 and 10.",
		goal.Name, goal.Description, goal.DurationDays(),
	)

	reply, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("feasibility score call failed, using default", "error", err, "goal", goal.Name)
		return defaultFeasibilityScore
	}

	score, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		slog.Warn("feasibility score reply not an integer, using default", "reply", reply)
		return defaultFeasibilityScore
	}

	return clamp(score, 1, 10)
}

// Notes returns a short motivational note for the goal, truncated to a
// fixed character budget, with a fixed fallback on any failure.
func (s *FeasibilityScorer) Notes(ctx context.Context, goal *model.Goal) string {
	prompt := fmt.Sprintf(
		"Please write a motivational paragraph to encourage someone working towards the following goal:\n"+
			"Goal Name: %s\n"+
			"Goal Description: %s",
		goal.Name, goal.Description,
	)

	reply, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("motivational note call failed, using fallback", "error", err, "goal", goal.Name)
		return fallbackModelNotes
	}

	return truncate(strings.TrimSpace(reply), modelNotesLimit)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
