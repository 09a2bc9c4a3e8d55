package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/plannerhq/planner/internal/model"
)

var (
	ErrPlanNotFound     = errors.New("daily plan not found")
	ErrActivityNotFound = errors.New("plan activity not found")

	// ErrPlanExists signals the (goal_id, plan_date) uniqueness constraint.
	// Two concurrent generation requests can both pass the existence check;
	// the loser of the insert race gets this instead of a crash.
	ErrPlanExists = errors.New("a plan for this goal and date already exists")
)

type PlanRepository interface {
	CreateWithActivities(plan *model.DailyPlan, activities []*model.PlanActivity, promoteGoal bool) error
	ByGoalAndDate(goalID, planDate string) (*model.DailyPlan, error)
	ByIDForUser(userID, planID string) (*model.DailyPlan, error)
	Plans(goalID string) ([]*model.DailyPlan, error)
	PlansBefore(goalID, planDate string) ([]*model.DailyPlan, error)
	Activities(planID string) ([]*model.PlanActivity, error)
	ActivityByIDForUser(userID, activityID string) (*model.PlanActivity, error)
	CompletedActivityCount(goalID string) (int, error)
	ActivityCount(goalID string) (int, error)
	UpdatePlan(plan *model.DailyPlan) error
	UpdateActivityStatus(activityID, status string) error
}

type planRepository struct {
	db *sqlx.DB
}

func NewPlanRepository(db *sqlx.DB) PlanRepository {
	return &planRepository{db: db}
}

// CreateWithActivities inserts a daily plan and all of its activities in
// one transaction; either everything commits or nothing does. When
// promoteGoal is set the owning goal moves from Pending to In Progress in
// the same transaction.
func (r *planRepository) CreateWithActivities(plan *model.DailyPlan, activities []*model.PlanActivity, promoteGoal bool) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	planQuery := `INSERT INTO daily_plans (id, goal_id, plan_date, status, notes, created_at)
	              VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.Exec(planQuery,
		plan.ID,
		plan.GoalID,
		plan.PlanDate,
		plan.Status,
		plan.Notes,
		plan.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlanExists
		}
		return fmt.Errorf("failed to create plan: %w", err)
	}

	activityQuery := `INSERT INTO plan_activities (id, plan_id, activity_name, start_time, end_time, status, notes, created_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for i, a := range activities {
		_, err := tx.Exec(activityQuery,
			a.ID,
			a.PlanID,
			a.ActivityName,
			a.StartTime,
			a.EndTime,
			a.Status,
			a.Notes,
			a.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create activity %d: %w", i+1, err)
		}
	}

	if promoteGoal {
		_, err := tx.Exec(
			`UPDATE goals SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
			model.GoalStatusInProgress, plan.CreatedAt, plan.GoalID, model.GoalStatusPending,
		)
		if err != nil {
			return fmt.Errorf("failed to promote goal: %w", err)
		}
	}

	return tx.Commit()
}

func (r *planRepository) ByGoalAndDate(goalID, planDate string) (*model.DailyPlan, error) {
	plan := &model.DailyPlan{}
	query := `SELECT * FROM daily_plans WHERE goal_id = $1 AND plan_date = $2`

	err := r.db.Get(plan, query, goalID, planDate)
	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}

	return plan, err
}

func (r *planRepository) ByIDForUser(userID, planID string) (*model.DailyPlan, error) {
	plan := &model.DailyPlan{}
	query := `SELECT p.* FROM daily_plans p
	          JOIN goals g ON g.id = p.goal_id
	          WHERE p.id = $1 AND g.user_id = $2`

	err := r.db.Get(plan, query, planID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}

	return plan, err
}

func (r *planRepository) Plans(goalID string) ([]*model.DailyPlan, error) {
	var plans []*model.DailyPlan
	query := `SELECT * FROM daily_plans WHERE goal_id = $1 ORDER BY plan_date ASC`

	err := r.db.Select(&plans, query, goalID)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *planRepository) PlansBefore(goalID, planDate string) ([]*model.DailyPlan, error) {
	var plans []*model.DailyPlan
	query := `SELECT * FROM daily_plans WHERE goal_id = $1 AND plan_date < $2 ORDER BY plan_date ASC`

	err := r.db.Select(&plans, query, goalID, planDate)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *planRepository) Activities(planID string) ([]*model.PlanActivity, error) {
	var activities []*model.PlanActivity
	query := `SELECT * FROM plan_activities WHERE plan_id = $1 ORDER BY start_time ASC, created_at ASC`

	err := r.db.Select(&activities, query, planID)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *planRepository) ActivityByIDForUser(userID, activityID string) (*model.PlanActivity, error) {
	activity := &model.PlanActivity{}
	query := `SELECT a.* FROM plan_activities a
	          JOIN daily_plans p ON p.id = a.plan_id
	          JOIN goals g ON g.id = p.goal_id
	          WHERE a.id = $1 AND g.user_id = $2`

	err := r.db.Get(activity, query, activityID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}

	return activity, err
}

func (r *planRepository) CompletedActivityCount(goalID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM plan_activities a
	          JOIN daily_plans p ON p.id = a.plan_id
	          WHERE p.goal_id = $1 AND a.status = $2`

	err := r.db.QueryRow(query, goalID, model.ActivityStatusCompleted).Scan(&count)
	return count, err
}

func (r *planRepository) ActivityCount(goalID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM plan_activities a
	          JOIN daily_plans p ON p.id = a.plan_id
	          WHERE p.goal_id = $1`

	err := r.db.QueryRow(query, goalID).Scan(&count)
	return count, err
}

func (r *planRepository) UpdatePlan(plan *model.DailyPlan) error {
	query := `UPDATE daily_plans SET status = $1, notes = $2 WHERE id = $3`

	result, err := r.db.Exec(query, plan.Status, plan.Notes, plan.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *planRepository) UpdateActivityStatus(activityID, status string) error {
	query := `UPDATE plan_activities SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(query, status, activityID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrActivityNotFound
	}

	return nil
}
