package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/plannerhq/planner/internal/model"
)

var ErrUnplannedNotFound = errors.New("unplanned activity not found")

type UnplannedActivityRepository interface {
	Create(activity *model.UnplannedActivity) error
	ByIDForUser(userID, activityID string) (*model.UnplannedActivity, error)
	ByGoal(goalID string) ([]*model.UnplannedActivity, error)
	Update(activity *model.UnplannedActivity) error
	Delete(userID, activityID string) error
}

type unplannedActivityRepository struct {
	db *sqlx.DB
}

func NewUnplannedActivityRepository(db *sqlx.DB) UnplannedActivityRepository {
	return &unplannedActivityRepository{db: db}
}

func (r *unplannedActivityRepository) Create(activity *model.UnplannedActivity) error {
	query := `INSERT INTO unplanned_activities (id, goal_id, activity_date, activity_name, start_time, end_time, reason, effect, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		activity.ID,
		activity.GoalID,
		activity.ActivityDate,
		activity.ActivityName,
		activity.StartTime,
		activity.EndTime,
		activity.Reason,
		activity.Effect,
		activity.CreatedAt,
	)

	return err
}

func (r *unplannedActivityRepository) ByIDForUser(userID, activityID string) (*model.UnplannedActivity, error) {
	activity := &model.UnplannedActivity{}
	query := `SELECT u.* FROM unplanned_activities u
	          JOIN goals g ON g.id = u.goal_id
	          WHERE u.id = $1 AND g.user_id = $2`

	err := r.db.Get(activity, query, activityID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrUnplannedNotFound
	}

	return activity, err
}

func (r *unplannedActivityRepository) ByGoal(goalID string) ([]*model.UnplannedActivity, error) {
	var activities []*model.UnplannedActivity
	query := `SELECT * FROM unplanned_activities WHERE goal_id = $1 ORDER BY activity_date ASC, start_time ASC`

	err := r.db.Select(&activities, query, goalID)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *unplannedActivityRepository) Update(activity *model.UnplannedActivity) error {
	query := `UPDATE unplanned_activities
	          SET activity_date = $1, activity_name = $2, start_time = $3, end_time = $4, reason = $5, effect = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		activity.ActivityDate,
		activity.ActivityName,
		activity.StartTime,
		activity.EndTime,
		activity.Reason,
		activity.Effect,
		activity.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUnplannedNotFound
	}

	return nil
}

func (r *unplannedActivityRepository) Delete(userID, activityID string) error {
	query := `DELETE FROM unplanned_activities
	          WHERE id = $1 AND goal_id IN (SELECT id FROM goals WHERE user_id = $2)`

	result, err := r.db.Exec(query, activityID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUnplannedNotFound
	}

	return nil
}
