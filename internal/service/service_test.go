package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/internal/db"
	"github.com/plannerhq/planner/internal/model"
	"github.com/plannerhq/planner/internal/repository"
)

// mockAI scripts the model reply for a test and records the last prompt.
type mockAI struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (m *mockAI) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.reply, m.err
}

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	d, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
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
	require.NoError(t, repository.NewUserRepository(d).Create(user))
	return user
}

func seedGoal(t *testing.T, d *sqlx.DB, userID, status, startDate, endDate string) *model.Goal {
	t.Helper()

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        "Run a 10k",
		Description: "Train up from the couch",
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repository.NewGoalRepository(d).Create(goal))
	return goal
}
