package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
)

func newGoalService(t *testing.T, ai *mockAI, now time.Time) (*GoalService, *sqlx.DB) {
	t.Helper()

	d := newTestDB(t)
	svc := NewGoalService(
		repository.NewGoalRepository(d),
		repository.NewPlanRepository(d),
		NewFeasibilityScorer(ai),
		clock.Fixed(now),
	)
	return svc, d
}

func TestGoalCreate(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{reply: "8"}, now)
	user := seedUser(t, d)

	goal, err := svc.Create(context.Background(), user.ID, "  Run a 10k  ", "couch to 10k", "2024-01-01", "2024-01-28")
	require.NoError(t, err)

	assert.Equal(t, "Run a 10k", goal.Name)
	assert.Equal(t, model.GoalStatusPending, goal.Status)
	assert.Equal(t, 8, goal.FeasibilityScore)
	assert.Equal(t, "8", goal.ModelNotes)

	// Timestamps come from the injected clock, not the wall clock
	assert.True(t, goal.CreatedAt.Equal(now))
	assert.True(t, goal.UpdatedAt.Equal(now))
}

func TestGoalCreateValidation(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{reply: "5"}, now)
	user := seedUser(t, d)
	ctx := context.Background()

	tests := []struct {
		name      string
		goalName  string
		startDate string
		endDate   string
		wantErr   error
	}{
		{"blank name", "   ", "2024-01-10", "2024-01-20", ErrGoalNameRequired},
		{"bad start date", "X", "January 10", "2024-01-20", ErrInvalidDates},
		{"bad end date", "X", "2024-01-10", "someday", ErrInvalidDates},
		{"end before start", "X", "2024-01-20", "2024-01-10", ErrInvalidDates},
		{"longer than 30 days", "X", "2024-01-10", "2024-02-10", ErrGoalTooLong},
		{"start in the past", "X", "2024-01-09", "2024-01-20", ErrStartDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, user.ID, tt.goalName, "", tt.startDate, tt.endDate)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGoalCreateThirtyDaySpanAllowed(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{reply: "5"}, now)
	user := seedUser(t, d)

	_, err := svc.Create(context.Background(), user.ID, "X", "", "2024-01-01", "2024-01-31")
	assert.NoError(t, err)
}

func TestGoalCreateRejectsSecondActiveGoal(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{reply: "5"}, now)
	user := seedUser(t, d)
	ctx := context.Background()

	_, err := svc.Create(ctx, user.ID, "First", "", "2024-01-01", "2024-01-20")
	require.NoError(t, err)

	_, err = svc.Create(ctx, user.ID, "Second", "", "2024-01-01", "2024-01-20")
	assert.ErrorIs(t, err, ErrActiveGoalExists)

	// Other users are unaffected
	other := seedUser(t, d)
	_, err = svc.Create(ctx, other.ID, "Theirs", "", "2024-01-01", "2024-01-20")
	assert.NoError(t, err)
}

func TestGoalCreateAllowedAfterGoalFinished(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{reply: "5"}, now)
	user := seedUser(t, d)
	ctx := context.Background()

	first, err := svc.Create(ctx, user.ID, "First", "", "2024-01-01", "2024-01-20")
	require.NoError(t, err)

	_, err = svc.Cancel(user.ID, first.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, user.ID, "Second", "", "2024-01-01", "2024-01-20")
	assert.NoError(t, err)
}

func TestGoalCreateModelFallbacks(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{err: errors.New("model down")}, now)
	user := seedUser(t, d)

	goal, err := svc.Create(context.Background(), user.ID, "X", "", "2024-01-01", "2024-01-20")
	require.NoError(t, err)

	assert.Equal(t, defaultFeasibilityScore, goal.FeasibilityScore)
	assert.Equal(t, fallbackModelNotes, goal.ModelNotes)
}

func TestGoalTransitions(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc, d := newGoalService(t, &mockAI{reply: "5"}, now)
	user := seedUser(t, d)
	ctx := context.Background()

	goal, err := svc.Create(ctx, user.ID, "X", "", "2024-01-01", "2024-01-20")
	require.NoError(t, err)

	done, err := svc.Complete(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusCompleted, done.Status)

	// Finished goals cannot transition again
	_, err = svc.Cancel(user.ID, goal.ID)
	assert.ErrorIs(t, err, ErrGoalNotActive)

	// Ownership: another user does not see the goal
	other := seedUser(t, d)
	_, err = svc.Complete(other.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}
