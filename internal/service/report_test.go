package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/clock"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
)

var reportNow = time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)

func newReportService(t *testing.T, ai *mockAI) (*ReportService, *sqlx.DB) {
	t.Helper()

	d := newTestDB(t)
	svc := NewReportService(
		repository.NewGoalRepository(d),
		repository.NewPlanRepository(d),
		repository.NewDailyReportRepository(d),
		repository.NewGoalReportRepository(d),
		ai,
		clock.Fixed(reportNow),
	)
	return svc, d
}

// seedPlanWithActivities inserts a plan for the date with the given
// activity statuses.
func seedPlanWithActivities(t *testing.T, d *sqlx.DB, goalID, date string, statuses ...string) {
	t.Helper()

	plan := &model.DailyPlan{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		PlanDate:  date,
		Status:    model.PlanStatusPending,
		CreatedAt: reportNow,
	}

	activities := make([]*model.PlanActivity, 0, len(statuses))
	for i, status := range statuses {
		activities = append(activities, &model.PlanActivity{
			ID:           uuid.New().String(),
			PlanID:       plan.ID,
			ActivityName: "Session",
			StartTime:    time.Date(2024, 1, 1, 8+i, 0, 0, 0, time.UTC).Format(model.TimeFormat),
			EndTime:      time.Date(2024, 1, 1, 9+i, 0, 0, 0, time.UTC).Format(model.TimeFormat),
			Status:       status,
			CreatedAt:    reportNow,
		})
	}

	require.NoError(t, repository.NewPlanRepository(d).CreateWithActivities(plan, activities, false))
}

func TestCreateDailyReport(t *testing.T) {
	ai := &mockAI{reply: "Solid progress today."}
	svc, d := newReportService(t, ai)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress, "2024-01-01", "2024-01-30")
	seedPlanWithActivities(t, d, goal.ID, "2024-01-05", model.ActivityStatusCompleted, model.ActivityStatusPending)

	report, err := svc.CreateDaily(context.Background(), user.ID, goal.ID, "felt good")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", report.ReportDate)
	assert.Equal(t, "Solid progress today.", report.ModelNotes)
	assert.Equal(t, "felt good", report.UserNotes)

	list, err := svc.DailyByGoal(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateDailyReportModelFallback(t *testing.T) {
	ai := &mockAI{err: errors.New("model down")}
	svc, d := newReportService(t, ai)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress, "2024-01-01", "2024-01-30")
	seedPlanWithActivities(t, d, goal.ID, "2024-01-05", model.ActivityStatusPending)

	report, err := svc.CreateDaily(context.Background(), user.ID, goal.ID, "rough day")
	require.NoError(t, err)
	assert.Empty(t, report.ModelNotes)
	assert.Equal(t, "rough day", report.UserNotes)
}

func TestCreateDailyReportWithoutPlan(t *testing.T) {
	ai := &mockAI{reply: "should not be called"}
	svc, d := newReportService(t, ai)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress, "2024-01-01", "2024-01-30")

	report, err := svc.CreateDaily(context.Background(), user.ID, goal.ID, "")
	require.NoError(t, err)
	assert.Empty(t, report.ModelNotes)

	// No schedule for the day means no recap prompt either
	assert.Equal(t, 0, ai.calls)
}

func TestUpdateDailyReport(t *testing.T) {
	ai := &mockAI{reply: "recap"}
	svc, d := newReportService(t, ai)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress, "2024-01-01", "2024-01-30")

	report, err := svc.CreateDaily(context.Background(), user.ID, goal.ID, "first draft")
	require.NoError(t, err)

	updated, err := svc.UpdateDaily(user.ID, report.ID, "second thoughts")
	require.NoError(t, err)
	assert.Equal(t, "second thoughts", updated.UserNotes)

	other := seedUser(t, d)
	_, err = svc.UpdateDaily(other.ID, report.ID, "not mine")
	assert.ErrorIs(t, err, repository.ErrDailyReportNotFound)

	require.NoError(t, svc.DeleteDaily(user.ID, report.ID))
	err = svc.DeleteDaily(user.ID, report.ID)
	assert.ErrorIs(t, err, repository.ErrDailyReportNotFound)
}

func TestUpsertGoalReport(t *testing.T) {
	ai := &mockAI{reply: "A strong month overall."}
	svc, d := newReportService(t, ai)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress, "2024-01-01", "2024-01-30")
	seedPlanWithActivities(t, d, goal.ID, "2024-01-04",
		model.ActivityStatusCompleted,
		model.ActivityStatusPending,
		model.ActivityStatusSkipped,
		model.ActivityStatusPending,
	)

	report, err := svc.UpsertGoalReport(context.Background(), user.ID, goal.ID, "proud of this")
	require.NoError(t, err)
	assert.InDelta(t, 25.0, report.CompletionRate, 0.001)
	assert.Equal(t, "A strong month overall.", report.ModelNotes)
	assert.Equal(t, "proud of this", report.UserNotes)

	// Complete one more activity, refresh without new notes: the rate
	// updates, the earlier user notes survive.
	planRepo := repository.NewPlanRepository(d)
	plans, err := planRepo.Plans(goal.ID)
	require.NoError(t, err)
	activities, err := planRepo.Activities(plans[0].ID)
	require.NoError(t, err)
	var pending *model.PlanActivity
	for _, a := range activities {
		if a.Status == model.ActivityStatusPending {
			pending = a
			break
		}
	}
	require.NotNil(t, pending)
	require.NoError(t, planRepo.UpdateActivityStatus(pending.ID, model.ActivityStatusCompleted))

	refreshed, err := svc.UpsertGoalReport(context.Background(), user.ID, goal.ID, "")
	require.NoError(t, err)
	assert.Equal(t, report.ID, refreshed.ID)
	assert.InDelta(t, 50.0, refreshed.CompletionRate, 0.001)
	assert.Equal(t, "proud of this", refreshed.UserNotes)

	got, err := svc.GoalReport(user.ID, goal.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got.CompletionRate, 0.001)
}

func TestGoalReportWithNoActivities(t *testing.T) {
	ai := &mockAI{reply: "Just getting started."}
	svc, d := newReportService(t, ai)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusPending, "2024-01-01", "2024-01-30")

	report, err := svc.UpsertGoalReport(context.Background(), user.ID, goal.ID, "")
	require.NoError(t, err)
	assert.Zero(t, report.CompletionRate)

	_, err = svc.GoalReport(user.ID, "no-such-goal")
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}
