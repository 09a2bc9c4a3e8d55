package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/db"
	"github.com/plannerhq/planner/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	d, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	// A second connection would get its own empty in-memory database
	d.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(d.DB, "sqlite"))

	t.Cleanup(func() { d.Close() })
	return d
}

func seedUser(t *testing.T, d *sqlx.DB) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewUserRepository(d).Create(user))
	return user
}

func seedGoal(t *testing.T, d *sqlx.DB, userID, status string) *model.Goal {
	t.Helper()

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        "Learn to juggle",
		Description: "Three balls by the end of the month",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-30",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewGoalRepository(d).Create(goal))
	return goal
}

func testActivity(planID, name, start, end string) *model.PlanActivity {
	return &model.PlanActivity{
		ID:           uuid.New().String(),
		PlanID:       planID,
		ActivityName: name,
		StartTime:    start,
		EndTime:      end,
		Status:       model.ActivityStatusPending,
		CreatedAt:    time.Now(),
	}
}
