package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/model"
)

func newPlan(goalID, date string) *model.DailyPlan {
	return &model.DailyPlan{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		PlanDate:  date,
		Status:    model.PlanStatusPending,
		Notes:     "stay focused",
		CreatedAt: time.Now(),
	}
}

func TestCreateWithActivities(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress)
	repo := NewPlanRepository(d)

	plan := newPlan(goal.ID, "2024-01-05")
	activities := []*model.PlanActivity{
		testActivity(plan.ID, "Practice throws", "10:00", "11:00"),
		testActivity(plan.ID, "Watch tutorial", "14:00", "15:00"),
	}

	require.NoError(t, repo.CreateWithActivities(plan, activities, false))

	got, err := repo.ByGoalAndDate(goal.ID, "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)

	stored, err := repo.Activities(plan.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, "Practice throws", stored[0].ActivityName)
}

func TestCreateWithActivitiesDuplicateDate(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress)
	repo := NewPlanRepository(d)

	first := newPlan(goal.ID, "2024-01-05")
	require.NoError(t, repo.CreateWithActivities(first, []*model.PlanActivity{
		testActivity(first.ID, "A", "10:00", "11:00"),
	}, false))

	// A second plan for the same (goal, date) loses to the uniqueness
	// constraint regardless of its own id.
	second := newPlan(goal.ID, "2024-01-05")
	err := repo.CreateWithActivities(second, []*model.PlanActivity{
		testActivity(second.ID, "B", "12:00", "13:00"),
	}, false)
	assert.ErrorIs(t, err, ErrPlanExists)

	// The loser's activities never became visible
	stored, err := repo.Activities(second.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateWithActivitiesRollsBackOnActivityFailure(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress)
	repo := NewPlanRepository(d)

	plan := newPlan(goal.ID, "2024-01-05")
	good := testActivity(plan.ID, "Good", "10:00", "11:00")
	// Same primary key forces the second insert to fail mid-transaction
	duplicate := testActivity(plan.ID, "Duplicate", "12:00", "13:00")
	duplicate.ID = good.ID

	err := repo.CreateWithActivities(plan, []*model.PlanActivity{good, duplicate}, false)
	require.Error(t, err)

	// All-or-nothing: no orphan plan is observable afterwards
	_, err = repo.ByGoalAndDate(goal.ID, "2024-01-05")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCreateWithActivitiesPromotesPendingGoal(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusPending)
	repo := NewPlanRepository(d)

	plan := newPlan(goal.ID, "2024-01-01")
	require.NoError(t, repo.CreateWithActivities(plan, []*model.PlanActivity{
		testActivity(plan.ID, "First step", "10:00", "11:00"),
	}, true))

	got, err := NewGoalRepository(d).ByID(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusInProgress, got.Status)
}

func TestPlansBeforeAndCompletedCount(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress)
	repo := NewPlanRepository(d)

	day1 := newPlan(goal.ID, "2024-01-01")
	a1 := testActivity(day1.ID, "Done", "10:00", "11:00")
	require.NoError(t, repo.CreateWithActivities(day1, []*model.PlanActivity{a1}, false))
	require.NoError(t, repo.UpdateActivityStatus(a1.ID, model.ActivityStatusCompleted))

	day2 := newPlan(goal.ID, "2024-01-02")
	require.NoError(t, repo.CreateWithActivities(day2, []*model.PlanActivity{
		testActivity(day2.ID, "Pending", "10:00", "11:00"),
	}, false))

	prior, err := repo.PlansBefore(goal.ID, "2024-01-02")
	require.NoError(t, err)
	require.Len(t, prior, 1)
	assert.Equal(t, "2024-01-01", prior[0].PlanDate)

	count, err := repo.CompletedActivityCount(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestActivityOwnershipLookup(t *testing.T) {
	d := newTestDB(t)
	owner := seedUser(t, d)
	stranger := seedUser(t, d)
	goal := seedGoal(t, d, owner.ID, model.GoalStatusInProgress)
	repo := NewPlanRepository(d)

	plan := newPlan(goal.ID, "2024-01-05")
	activity := testActivity(plan.ID, "Mine", "10:00", "11:00")
	require.NoError(t, repo.CreateWithActivities(plan, []*model.PlanActivity{activity}, false))

	got, err := repo.ActivityByIDForUser(owner.ID, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.ActivityName)

	_, err = repo.ActivityByIDForUser(stranger.ID, activity.ID)
	assert.ErrorIs(t, err, ErrActivityNotFound)

	_, err = repo.ByIDForUser(stranger.ID, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestGoalCascadeDeletesPlans(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d)
	goal := seedGoal(t, d, user.ID, model.GoalStatusInProgress)
	repo := NewPlanRepository(d)

	plan := newPlan(goal.ID, "2024-01-05")
	require.NoError(t, repo.CreateWithActivities(plan, []*model.PlanActivity{
		testActivity(plan.ID, "Gone soon", "10:00", "11:00"),
	}, false))

	require.NoError(t, NewGoalRepository(d).Delete(user.ID, goal.ID))

	_, err := repo.ByGoalAndDate(goal.ID, "2024-01-05")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	activities, err := repo.Activities(plan.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)
}
